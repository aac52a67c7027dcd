package cli_test

import (
	"bytes"
	"testing"

	"github.com/calvinalkan/cmn/internal/cli"
)

func Test_Invalid_Global_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("--invalid-flag", "ls")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stdout, ""; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stderr, "unknown flag")
	cli.AssertContains(t, stderr, "--invalid-flag")

	cli.AssertContains(t, stderr, "Global flags:")
	cli.AssertContains(t, stderr, "--cwd")
	cli.AssertContains(t, stderr, "--config")
	cli.AssertContains(t, stderr, "--algorithm")
	cli.AssertContains(t, stderr, "--hash-len")
}

func Test_Bare_Command_When_Invoked(t *testing.T) {
	t.Parallel()

	// Call Run directly without test helper (which adds --cwd)
	var stdout, stderr bytes.Buffer

	exitCode := cli.Run(nil, &stdout, &stderr, []string{"cmn"}, nil)

	if got, want := exitCode, 0; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stderr.String(), ""; got != want {
		t.Errorf("stderr=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stdout.String(), "cmn - constants and words registry")
	cli.AssertContains(t, stdout.String(), "--cwd")
	cli.AssertContains(t, stdout.String(), "get <name>")
	cli.AssertContains(t, stdout.String(), "export [-o file]")
}

func Test_Help_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	for _, flag := range []string{"-h", "--help"} {
		stdout := c.MustRun(flag)
		cli.AssertContains(t, stdout, "Commands:")
		cli.AssertContains(t, stdout, "shell")
	}
}

func Test_Unknown_Command_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("frobnicate")

	cli.AssertContains(t, stderr, "unknown command: frobnicate")
	cli.AssertContains(t, stderr, "Commands:")
}

func Test_Command_Help_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("hash", "--help")

	cli.AssertContains(t, stdout, "Usage: cmn hash [flags] <text>")
	cli.AssertContains(t, stdout, "--algorithm")
	cli.AssertContains(t, stdout, "--len")
}

func Test_Command_Unknown_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("ls", "--bogus")

	cli.AssertContains(t, stderr, "unknown flag: --bogus")
	cli.AssertContains(t, stderr, "Usage: cmn ls [--json]")
}
