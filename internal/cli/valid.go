package cli

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/cmn/pkg/cmn"
)

// ValidCmd returns the valid command.
func ValidCmd(cfg *Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("valid", flag.ContinueOnError),
		Usage: "valid [name...]",
		Short: "Check constant integrity",
		Long: `Check that each named constant (default: all) is self-consistent: the
hash settings produce a digest of the declared length and the value is
well-formed. Invalid or unknown names are reported as warnings.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execValid(io, cfg, args)
		},
	}
}

func execValid(io *IO, cfg *Config, args []string) error {
	common, err := loadCommon(cfg)
	if err != nil {
		return err
	}

	reportValidity(io, common.Constants(), args)

	return nil
}

func reportValidity(io *IO, reg *cmn.ConstantsRegistry, names []string) {
	if len(names) == 0 {
		names = reg.Names()
	}

	for _, name := range names {
		e, ok := reg.Entry(name)
		if !ok {
			io.Warn(name+": constant not found", "check the name with 'cmn ls'")

			continue
		}

		status := entryStatus(e)
		if status != "ok" {
			io.Warn(name+": invalid", "check hash settings ("+e.HashConfig().String()+") and value")
		}

		io.Println(name, status)
	}
}

// CheckCmd returns the check command.
func CheckCmd(cfg *Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("check", flag.ContinueOnError),
		Usage: "check <file>",
		Short: "Validate a JSON document",
		Long: `Load a constants/words document (JSON, comments and trailing commas
allowed) and report its contents. A rejected document is an error; invalid
constants are reported as warnings.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execCheck(io, cfg, args)
		},
	}
}

func execCheck(io *IO, cfg *Config, args []string) error {
	if len(args) == 0 {
		return ErrFileRequired
	}

	data, err := os.ReadFile(resolvePath(cfg, args[0])) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDataFileRead, err)
	}

	common, err := cmn.FromJSONWithDefault(data, cfg.Hash)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	io.Println("hash=" + common.HashConfig().String())
	io.Println("constants=" + fmt.Sprint(common.Constants().Len()))
	io.Println("words=" + fmt.Sprint(common.Words().Len()))

	for _, e := range common.Constants().All() {
		if !e.IsValid() {
			io.Warn(e.Name()+": invalid", "fix the value or hash block in "+args[0])
		}
	}

	return nil
}
