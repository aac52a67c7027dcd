package cli

import (
	"context"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/cmn/pkg/cmn"
)

// HashCmd returns the hash command.
func HashCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("hash", flag.ContinueOnError)
	algorithm := fs.String("algorithm", "", "Hash algorithm (default: configured)")
	cost := fs.Uint32("cost", 0, "Cost factor (default: configured)")
	hashLen := fs.Int("len", 0, "Digest length in bytes (default: configured)")

	return &Command{
		Flags: fs,
		Usage: "hash [flags] <text>",
		Short: "Hash text with the integrity hash",
		Long: `Compute the integrity digest of the given text and print it as hex.
Out-of-range settings are not rejected: lengths above the algorithm maximum
are truncated and a warning is printed.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			hc := cfg.Hash

			if fs.Changed("algorithm") {
				alg, ok := cmn.ParseAlgorithm(*algorithm)
				if !ok {
					return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, *algorithm)
				}

				hc.Algorithm = alg
			}

			if fs.Changed("cost") {
				hc.Cost = *cost
			}

			if fs.Changed("len") {
				hc.HashLen = *hashLen
			}

			return execHash(io, hc, args)
		},
	}
}

func execHash(io *IO, hc cmn.HashConfig, args []string) error {
	if len(args) == 0 {
		return ErrInputRequired
	}

	if !hc.Valid() {
		io.Warn("hash settings "+hc.String()+" are invalid", "output may be truncated or empty")
	}

	io.Printf("%x\n", hc.Compute([]byte(strings.Join(args, " "))))

	return nil
}
