package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/cmn/pkg/cmn"
)

// LsCmd returns the ls command.
func LsCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "Print constants as JSON document entries")

	return &Command{
		Flags: fs,
		Usage: "ls [--json]",
		Short: "List constants",
		Long:  "List every constant as name, type and value, in catalog order.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execLs(io, cfg, *asJSON)
		},
	}
}

func execLs(io *IO, cfg *Config, asJSON bool) error {
	common, err := loadCommon(cfg)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := json.MarshalIndent(common.Document().Constants, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding constants: %w", err)
		}

		io.Println(string(data))

		return nil
	}

	tw := tabwriter.NewWriter(io.Out(), 0, 0, 2, ' ', 0)

	for _, e := range common.Constants().All() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name(), e.Value().Kind(), e.Value())
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// GetCmd returns the get command.
func GetCmd(cfg *Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("get", flag.ContinueOnError),
		Usage: "get <name>",
		Short: "Print a constant's value",
		Long:  "Print the value of the named constant. Names are case-sensitive.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execGet(io, cfg, args)
		},
	}
}

func execGet(io *IO, cfg *Config, args []string) error {
	if len(args) == 0 {
		return ErrNameRequired
	}

	common, err := loadCommon(cfg)
	if err != nil {
		return err
	}

	v, ok := common.Constants().Lookup(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", ErrConstantNotFound, args[0])
	}

	io.Println(v.String())

	return nil
}

// DigestCmd returns the digest command.
func DigestCmd(cfg *Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("digest", flag.ContinueOnError),
		Usage: "digest <name>",
		Short: "Print a constant's integrity digest",
		Long:  "Print the hex digest of the named constant under the configured hash settings.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execDigest(io, cfg, args)
		},
	}
}

func execDigest(io *IO, cfg *Config, args []string) error {
	if len(args) == 0 {
		return ErrNameRequired
	}

	common, err := loadCommon(cfg)
	if err != nil {
		return err
	}

	e, ok := common.Constants().Entry(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", ErrConstantNotFound, args[0])
	}

	io.Printf("%x\n", e.Digest())

	return nil
}

// entryStatus renders validity for valid and check output.
func entryStatus(e cmn.ConstantEntry) string {
	if e.IsValid() {
		return "ok"
	}

	return "invalid"
}
