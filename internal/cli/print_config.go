package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("print-config", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "Print the merged settings in config file format")

	return &Command{
		Flags: fs,
		Usage: "print-config [--json]",
		Short: "Show resolved configuration",
		Long:  "Display the effective configuration and which files it was loaded from.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			if *asJSON {
				out, err := FormatConfig(*cfg)
				if err != nil {
					return err
				}

				io.Println(out)

				return nil
			}

			return execPrintConfig(io, cfg)
		},
	}
}

func execPrintConfig(io *IO, cfg *Config) error {
	io.Println("effective_cwd=" + cfg.EffectiveCwd)
	io.Println("algorithm=" + cfg.Hash.Algorithm.String())
	io.Printf("cost=%d\n", cfg.Hash.Cost)
	io.Printf("hash_len=%d\n", cfg.Hash.HashLen)

	if cfg.DataFileAbs != "" {
		io.Println("data_file=" + cfg.DataFileAbs)
	}

	io.Println("")
	io.Println("# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		io.Println("(defaults only)")
	} else {
		if cfg.Sources.Global != "" {
			io.Println("global_config=" + cfg.Sources.Global)
		}

		if cfg.Sources.Project != "" {
			io.Println("project_config=" + cfg.Sources.Project)
		}
	}

	return nil
}
