package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/mycat/lib/model"
)

func parse(t *testing.T, args ...string) *invocation {
	inv, err := parseArgs(args, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)
	return inv
}

func TestParseNoArgsReadsStdin(t *testing.T) {
	t.Parallel()

	inv := parse(t)

	assert.Equal(t, []string{"-"}, inv.files)
	assert.Equal(t, model.Config{}, inv.config)
	assert.Equal(t, "warn", inv.logLevel)
}

func TestParseOnlyFlagsReadsStdin(t *testing.T) {
	t.Parallel()

	inv := parse(t, "-n", "-s", "-E")

	assert.Equal(t, []string{"-"}, inv.files)
	assert.Equal(t, model.Config{Number: model.NumberAll, SqueezeBlank: true, ShowEnds: true}, inv.config)
}

func TestParseLastNumberFlagWins(t *testing.T) {
	t.Parallel()

	assert.Equal(t, model.NumberNonBlank, parse(t, "-n", "-b").config.Number)
	assert.Equal(t, model.NumberAll, parse(t, "-b", "-n").config.Number)
	assert.Equal(t, model.NumberNonBlank, parse(t, "-b").config.Number)
	assert.Equal(t, model.NumberAll, parse(t, "-b", "x", "-n", "-s").config.Number)
}

func TestParseKeepsFileOrder(t *testing.T) {
	t.Parallel()

	inv := parse(t, "a.txt", "-E", "-", "b.txt")

	assert.Equal(t, []string{"a.txt", "-", "b.txt"}, inv.files)
	assert.True(t, inv.config.ShowEnds)
}

func TestParseFlagsBetweenFiles(t *testing.T) {
	t.Parallel()

	inv := parse(t, "a.txt", "-n", "b.txt", "-s", "c.txt")

	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, inv.files)
	assert.Equal(t, model.Config{Number: model.NumberAll, SqueezeBlank: true}, inv.config)
}

func TestParseValueFlagConsumesNextToken(t *testing.T) {
	t.Parallel()

	inv := parse(t, "--log-level", "debug", "a.txt")

	assert.Equal(t, []string{"a.txt"}, inv.files)
	assert.Equal(t, "debug", inv.logLevel)
}

func TestParseLongFlags(t *testing.T) {
	t.Parallel()

	inv := parse(t, "--number-nonblank", "--squeeze-blank", "--show-ends", "--log-level=debug")

	assert.Equal(t, model.Config{Number: model.NumberNonBlank, SqueezeBlank: true, ShowEnds: true}, inv.config)
	assert.Equal(t, "debug", inv.logLevel)
}

func TestParseInvalidFlags(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"-x", "-ns", "--", "--bogus", "-nb"} {
		_, err := parseArgs([]string{"a.txt", flag}, &bytes.Buffer{}, &bytes.Buffer{})

		var fe *InvalidFlagError
		if assert.True(t, errors.As(err, &fe), flag) {
			assert.Equal(t, flag, fe.Flag)
			assert.Equal(t, "invalid flag '"+flag+"'", fe.Error())
		}
	}
}

func TestParseHelp(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	_, err := parseArgs([]string{"--help"}, &stdout, &bytes.Buffer{})

	var code errJustExit
	require.True(t, errors.As(err, &code))
	assert.Equal(t, 0, int(code))
	assert.Contains(t, stdout.String(), appName)
	assert.Contains(t, stdout.String(), "--squeeze-blank")
}

func runWith(args []string, stdin string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunStdin(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runWith([]string{"-n"}, "a\nb\n")

	assert.Equal(t, 0, code)
	assert.Equal(t, "1\ta\n2\tb\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunFilesAndStdin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(a, []byte("a\n\n\n"), 0o600))
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	code, stdout, _ := runWith([]string{"-s", "-b", a, empty, "-", a}, "from stdin\n")

	assert.Equal(t, 0, code)
	assert.Equal(t, "1\ta\n\n2\tfrom stdin\n3\ta\n\n", stdout)
}

func TestRunFailureDiscardsOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("a\n"), 0o600))
	missing := filepath.Join(dir, "missing.txt")

	code, stdout, stderr := runWith([]string{a, missing}, "")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "reading file '"+missing+"'")
}

func TestRunEmptyStdinPrintsUsage(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runWith(nil, "")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Usage: "+appName)
}

func TestRunFlagsBetweenFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("a\n"), 0o600))

	code, stdout, stderr := runWith([]string{a, "-n", "-", a}, "b\n")

	assert.Equal(t, 0, code)
	assert.Equal(t, "1\ta\n2\tb\n3\ta\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunDirectoryFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	code, stdout, stderr := runWith([]string{dir}, "")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "mycat: ERROR: reading file '"+dir+"': is a directory\n", stderr)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrintUsageReportsWriteError(t *testing.T) {
	t.Parallel()

	inv := parse(t)

	err := inv.printUsage(failingWriter{})

	assert.Error(t, err)
}

func TestRunInvalidFlag(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runWith([]string{"-q"}, "a\n")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid flag '-q'")
}
