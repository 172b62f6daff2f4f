package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/mycat/lib/model"
	"github.com/pescuma/mycat/lib/sources"
)

const appName = "mycat"

type cli struct {
	Number         bool   `short:"n" help:"Number all output lines."`
	NumberNonblank bool   `short:"b" help:"Number non-blank output lines. The last of -n and -b wins."`
	SqueezeBlank   bool   `short:"s" help:"Suppress repeated empty output lines."`
	ShowEnds       bool   `short:"E" help:"Display $ at the end of each line."`
	LogLevel       string `default:"warn" enum:"debug,info,warn,error" env:"MYCAT_LOG_LEVEL" hidden:"" help:"Diagnostic log level."`

	// Filled by splitArgs, never by kong; declared here for the help text.
	Files []string `arg:"" optional:"" help:"Files to concatenate. With no file, or when file is -, read standard input."`
}

// InvalidFlagError reports a flag token that is not part of the grammar.
type InvalidFlagError struct {
	Flag string
}

func (e *InvalidFlagError) Error() string {
	return fmt.Sprintf("invalid flag '%v'", e.Flag)
}

// errJustExit asks the caller to stop with the given code, with nothing more
// to print.
type errJustExit int

func (e errJustExit) Error() string {
	return "exit: " + fmt.Sprint(int(e))
}

type invocation struct {
	config   model.Config
	files    []string
	logLevel string

	kctx *kong.Context
}

func parseArgs(args []string, stdout, stderr io.Writer) (*invocation, error) {
	grammar := cli{}
	exitCode := -1

	parser, err := kong.New(&grammar,
		kong.Name(appName),
		kong.Description("Concatenate files to standard output."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	flags, files, err := splitArgs(parser.Model, args)
	if err != nil {
		return nil, err
	}

	kctx, err := parser.Parse(flags)
	if exitCode >= 0 {
		return nil, errJustExit(exitCode)
	}
	if err != nil {
		return nil, errors.Wrap(err, "parsing arguments")
	}

	return &invocation{
		config: model.Config{
			Number:       numberMode(kctx, &grammar),
			SqueezeBlank: grammar.SqueezeBlank,
			ShowEnds:     grammar.ShowEnds,
		},
		files:    lo.Ternary(len(files) == 0, []string{sources.StdinName}, files),
		logLevel: grammar.LogLevel,
		kctx:     kctx,
	}, nil
}

// splitArgs separates flag tokens, with their values, from file names so
// that flags may appear anywhere between files. Every token that looks like a
// flag must be spelled exactly like one of the grammar flags. A lone "-" is a
// file name.
func splitArgs(app *kong.Application, args []string) ([]string, []string, error) {
	known := flagTokens(app, func(*kong.Flag) bool { return true })
	withValue := flagTokens(app, func(f *kong.Flag) bool { return !f.IsBool() })

	var flags, files []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(arg) <= 1 || arg[0] != '-' {
			files = append(files, arg)
			continue
		}

		name, _, hasValue := strings.Cut(arg, "=")
		if !known.Contains(name) {
			return nil, nil, &InvalidFlagError{Flag: arg}
		}

		flags = append(flags, arg)
		if !hasValue && withValue.Contains(name) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}

	return flags, files, nil
}

func flagTokens(app *kong.Application, include func(*kong.Flag) bool) *set.Set[string] {
	return set.From(lo.FlatMap(lo.Filter(app.Flags, func(f *kong.Flag, _ int) bool { return include(f) }),
		func(f *kong.Flag, _ int) []string {
			if f.Short == 0 {
				return []string{"--" + f.Name}
			}
			return []string{"--" + f.Name, "-" + string(f.Short)}
		}))
}

// numberMode resolves -n and -b, which both set the numbering mode. The flag
// parsed last wins.
func numberMode(kctx *kong.Context, grammar *cli) model.NumberMode {
	result := model.NumberNone

	for _, p := range kctx.Path {
		if p.Flag == nil {
			continue
		}

		switch {
		case p.Flag.Name == "number" && grammar.Number:
			result = model.NumberAll
		case p.Flag.Name == "number-nonblank" && grammar.NumberNonblank:
			result = model.NumberNonBlank
		}
	}

	return result
}

// printUsage writes the short usage text to w.
func (i *invocation) printUsage(w io.Writer) error {
	i.kctx.Stdout = w
	return i.kctx.PrintUsage(true)
}
