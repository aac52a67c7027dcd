package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/cmn/pkg/cmn"
)

const minArgs = 2

type globalFlags struct {
	set        *flag.FlagSet
	workDir    *string
	configPath *string
	dataFile   *string
	algorithm  *string
	cost       *uint32
	hashLen    *int
	help       *bool
}

func newGlobalFlags() globalFlags {
	fs := flag.NewFlagSet("cmn", flag.ContinueOnError)
	fs.SetInterspersed(false) // stop at the command name
	fs.SetOutput(io.Discard)

	return globalFlags{
		set:        fs,
		workDir:    fs.StringP("cwd", "C", "", "Run as if started in `dir`"),
		configPath: fs.StringP("config", "c", "", "Use specified config `file`"),
		dataFile:   fs.String("data", "", "Load constants and words from a JSON `file`"),
		algorithm:  fs.String("algorithm", "", "Hash algorithm (Blake3, Blake2b, Argon2id)"),
		cost:       fs.Uint32("cost", 0, "Hash cost factor"),
		hashLen:    fs.Int("hash-len", 0, "Digest length in bytes"),
		help:       fs.BoolP("help", "h", false, "Show help"),
	}
}

// overrides returns the config values explicitly set on the command line.
func (g globalFlags) overrides() Config {
	var cfg Config

	if g.set.Changed("algorithm") {
		cfg.Algorithm = *g.algorithm
	}

	if g.set.Changed("cost") {
		cfg.Cost = g.cost
	}

	if g.set.Changed("hash-len") {
		cfg.HashLen = g.hashLen
	}

	if g.set.Changed("data") {
		cfg.DataFile = *g.dataFile
	}

	return cfg
}

// Run is the main entry point. Returns exit code.
func Run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	globals := newGlobalFlags()

	if len(args) < minArgs {
		printUsage(out, globals, nil)

		return 0
	}

	err := globals.set.Parse(args[1:])
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fprintln(errOut, "error:", err)
		printUsage(errOut, globals, nil)

		return 1
	}

	rest := globals.set.Args()
	if errors.Is(err, flag.ErrHelp) || *globals.help || len(rest) == 0 {
		printUsage(out, globals, nil)

		return 0
	}

	cfg, err := LoadConfig(LoadConfigInput{
		WorkDirOverride: *globals.workDir,
		ConfigPath:      *globals.configPath,
		Overrides:       globals.overrides(),
		Env:             env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)
		printUsage(errOut, globals, nil)

		return 1
	}

	commands := allCommands(&cfg, stdin)

	name := rest[0]
	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd.Run(context.Background(), NewIO(out, errOut), rest[1:])
		}
	}

	fprintln(errOut, "error:", fmt.Errorf("%w: %s", ErrUnknownCommand, name))
	printUsage(errOut, globals, commands)

	return 1
}

func allCommands(cfg *Config, stdin io.Reader) []*Command {
	return []*Command{
		LsCmd(cfg),
		GetCmd(cfg),
		ValidCmd(cfg),
		DigestCmd(cfg),
		HashCmd(cfg),
		WordsCmd(cfg),
		ExportCmd(cfg),
		CheckCmd(cfg),
		ShellCmd(cfg, stdin),
		PrintConfigCmd(cfg),
	}
}

// loadCommon builds the Common for a command: the data file when configured,
// otherwise the built-in catalogs.
func loadCommon(cfg *Config) (*cmn.Common, error) {
	if cfg.DataFileAbs == "" {
		return cmn.NewWithHashConfig(cfg.Hash), nil
	}

	data, err := os.ReadFile(cfg.DataFileAbs) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataFileRead, err)
	}

	c, err := cmn.FromJSONWithDefault(data, cfg.Hash)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.DataFile, err)
	}

	return c, nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, globals globalFlags, commands []*Command) {
	if commands == nil {
		cfg := DefaultConfig()
		commands = allCommands(&cfg, nil)
	}

	fprintln(w, "cmn - constants and words registry")
	fprintln(w)
	fprintln(w, "Usage: cmn [flags] <command> [args]")
	fprintln(w)
	fprintln(w, "Global flags:")
	fprintln(w, strings.TrimRight(globals.set.FlagUsages(), "\n"))
	fprintln(w)
	fprintln(w, "Commands:")

	for _, cmd := range commands {
		fprintln(w, cmd.HelpLine())
	}
}
