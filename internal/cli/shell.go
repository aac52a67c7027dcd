package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/cmn/pkg/cmn"
)

const shellPrompt = "cmn> "

var shellCommands = []string{"add", "rm", "has", "clear", "len", "words", "get", "valid", "help", "quit"}

// ShellCmd returns the shell command.
func ShellCmd(cfg *Config, stdin io.Reader) *Command {
	return &Command{
		Flags: flag.NewFlagSet("shell", flag.ContinueOnError),
		Usage: "shell",
		Short: "Interactive word and constant shell",
		Long: `Start an interactive session over one in-memory registry. Word edits last
for the session only. Reads commands line by line when stdin is not a
terminal. Type 'help' inside the shell for commands.`,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			common, err := loadCommon(cfg)
			if err != nil {
				return err
			}

			sh := &shell{common: common}

			if stdin == os.Stdin && isTerminal(stdin) {
				return sh.runInteractive(ctx, o)
			}

			return sh.runScript(ctx, o, stdin)
		},
	}
}

// shell evaluates REPL lines against one Common.
type shell struct {
	common *cmn.Common
}

// runInteractive drives the shell from a terminal with line editing.
func (s *shell) runInteractive(ctx context.Context, o *IO) error {
	state := liner.NewLiner()
	defer state.Close()

	state.SetCtrlCAborts(true)
	state.SetCompleter(completeShell)

	o.Println("cmn shell - type 'help' for commands")

	for ctx.Err() == nil {
		line, err := state.Prompt(shellPrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(line) != "" {
			state.AppendHistory(line)
		}

		out, quit := s.eval(line)
		for _, l := range out {
			o.Println(l)
		}

		if quit {
			return nil
		}
	}

	return ctx.Err()
}

// runScript evaluates lines from a non-interactive reader until EOF or quit.
func (s *shell) runScript(ctx context.Context, o *IO, r io.Reader) error {
	if r == nil {
		return nil
	}

	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		out, quit := s.eval(scanner.Text())
		for _, l := range out {
			o.Println(l)
		}

		if quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	return nil
}

func completeShell(line string) []string {
	var out []string

	for _, c := range shellCommands {
		if strings.HasPrefix(c, strings.ToLower(line)) {
			out = append(out, c)
		}
	}

	return out
}

// eval runs one line and returns the output lines and whether to quit.
func (s *shell) eval(line string) ([]string, bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil, false
	}

	cmd, args := strings.ToLower(parts[0]), parts[1:]
	words := s.common.Words()
	constants := s.common.Constants()

	switch cmd {
	case "quit", "exit", "q":
		return nil, true

	case "help", "?":
		return []string{
			"add <word...>     add words",
			"rm <word...>      remove words",
			"has <word>        membership test",
			"clear             remove every word",
			"len               number of words",
			"words             list words",
			"get <name>        constant value",
			"valid [name...]   constant integrity",
			"quit              leave the shell",
		}, false

	case "add":
		return eachWord(args, func(w string) string {
			if words.Add(w) {
				return "added " + w
			}

			return "exists " + w
		}), false

	case "rm", "remove":
		return eachWord(args, func(w string) string {
			if words.Remove(w) {
				return "removed " + w
			}

			return "absent " + w
		}), false

	case "has", "contains":
		if len(args) != 1 {
			return []string{"usage: has <word>"}, false
		}

		if words.Contains(args[0]) {
			return []string{"yes"}, false
		}

		return []string{"no"}, false

	case "clear":
		words.Clear()
		return []string{"cleared"}, false

	case "len":
		return []string{fmt.Sprint(words.Len())}, false

	case "words", "ls":
		return words.All(), false

	case "get":
		if len(args) != 1 {
			return []string{"usage: get <name>"}, false
		}

		v, ok := constants.Lookup(args[0])
		if !ok {
			return []string{"not found: " + args[0]}, false
		}

		return []string{v.String()}, false

	case "valid":
		names := args
		if len(names) == 0 {
			names = constants.Names()
		}

		out := make([]string, 0, len(names))

		for _, name := range names {
			e, ok := constants.Entry(name)
			if !ok {
				out = append(out, name+" not found")

				continue
			}

			out = append(out, name+" "+entryStatus(e))
		}

		return out, false

	default:
		return []string{"unknown command: " + cmd + " (type 'help' for commands)"}, false
	}
}

func eachWord(args []string, fn func(string) string) []string {
	if len(args) == 0 {
		return []string{"usage: <command> <word...>"}
	}

	out := make([]string, len(args))
	for i, w := range args {
		out[i] = fn(w)
	}

	return out
}
