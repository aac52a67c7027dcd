package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/calvinalkan/cmn/pkg/cmn"
)

const (
	formatJSON   = "json"
	formatYAML   = "yaml"
	formatSQLite = "sqlite"
)

// ExportCmd returns the export command.
func ExportCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	output := fs.StringP("output", "o", "", "Write to `file` instead of stdout")
	format := fs.String("format", formatJSON, "Output format: json, yaml or sqlite")

	return &Command{
		Flags: fs,
		Usage: "export [-o file] [--format f]",
		Short: "Export constants and words",
		Long: `Write the constants and words as a document. JSON output can be loaded
again with --data or checked with 'cmn check'. The sqlite format writes
tables hash, constants and words and needs -o. Files are replaced atomically.`,
		Exec: func(ctx context.Context, io *IO, _ []string) error {
			return execExport(ctx, io, cfg, *output, *format)
		},
	}
}

func execExport(ctx context.Context, io *IO, cfg *Config, output, format string) error {
	common, err := loadCommon(cfg)
	if err != nil {
		return err
	}

	if format == formatSQLite {
		if output == "" {
			return fmt.Errorf("%w: sqlite export writes a file", ErrFileRequired)
		}

		return writeSQLite(ctx, resolvePath(cfg, output), common)
	}

	data, err := encodeCommon(common, format)
	if err != nil {
		return err
	}

	if output == "" {
		io.Printf("%s", data)

		return nil
	}

	err = atomic.WriteFile(resolvePath(cfg, output), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	return nil
}

func encodeCommon(common *cmn.Common, format string) ([]byte, error) {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(common.Document(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}

		return append(data, '\n'), nil
	case formatYAML:
		data, err := yaml.Marshal(common)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}

		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// resolvePath makes a user-supplied path relative to the effective cwd.
func resolvePath(cfg *Config, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(cfg.EffectiveCwd, path)
}
