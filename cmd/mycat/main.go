package main

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/pescuma/mycat/lib/consoles"
	"github.com/pescuma/mycat/lib/sources"
	"github.com/pescuma/mycat/lib/utils"
	"github.com/pescuma/mycat/lib/workspace"
)

func main() {
	os.Exit(main1())
}

func main1() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// run is the only place where errors turn into messages and exit codes.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	console := consoles.NewWriterConsole(stderr, appName)

	inv, err := parseArgs(args, stdout, stderr)
	if err != nil {
		return fail(console, err)
	}

	logger, err := utils.NewLogger(stderr, inv.logLevel)
	if err != nil {
		return fail(console, err)
	}

	ws, err := workspace.NewWorkspace(inv.config, stdin, logger)
	if err != nil {
		return fail(console, err)
	}

	err = ws.AppendAll(inv.files)
	if errors.Is(err, sources.ErrEmptyStdin) {
		err = inv.printUsage(stderr)
		if err != nil {
			return fail(console, err)
		}
		return 1
	}
	if err != nil {
		return fail(console, err)
	}

	err = ws.Write(stdout)
	if err != nil {
		return fail(console, err)
	}

	return 0
}

func fail(console consoles.Console, err error) int {
	var code errJustExit
	if errors.As(err, &code) {
		return int(code)
	}

	console.Printf("ERROR: %v\n", err)
	return 1
}
