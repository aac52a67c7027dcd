package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/cmn/pkg/cmn"
)

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	Algorithm string  `json:"algorithm,omitempty"`
	Cost      *uint32 `json:"cost,omitempty"`
	HashLen   *int    `json:"hash_len,omitempty"`  //nolint:tagliatelle // snake_case for config file
	DataFile  string  `json:"data_file,omitempty"` //nolint:tagliatelle // snake_case for config file

	// Resolved values (computed, not serialized)
	EffectiveCwd string         `json:"-"` // Absolute working directory (from -C flag or os.Getwd)
	DataFileAbs  string         `json:"-"` // Absolute path to data file, empty for built-in catalogs
	Hash         cmn.HashConfig `json:"-"`

	// Sources tracks which config files were loaded (for diagnostics)
	Sources ConfigSources `json:"-"`
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// ConfigFileName is the default project config file name.
const ConfigFileName = ".cmn.json"

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	def := cmn.DefaultHashConfig()
	cost := def.Cost
	hashLen := def.HashLen

	return Config{
		Algorithm: def.Algorithm.String(),
		Cost:      &cost,
		HashLen:   &hashLen,
	}
}

// getGlobalConfigPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/cmn/config.json if set, otherwise ~/.config/cmn/config.json.
// Returns empty string if home directory cannot be determined.
func getGlobalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "cmn", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "cmn", "config.json")
	}

	return ""
}

// LoadConfigInput holds the inputs for LoadConfig.
type LoadConfigInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	Overrides       Config            // --algorithm, --cost, --hash-len, --data; zero fields mean no override
	Env             map[string]string // environment variables
}

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/cmn/config.json or $XDG_CONFIG_HOME/cmn/config.json)
// 3. Project config file at default location (.cmn.json, if exists)
// 4. Explicit config file via configPath (if non-empty)
// 5. CLI overrides.
//
// The returned Config has Hash and DataFileAbs resolved.
func LoadConfig(input LoadConfigInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := DefaultConfig()

	globalCfg, globalPath, err := loadOptionalConfig(getGlobalConfigPath(input.Env))
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalPath
	cfg = mergeConfig(cfg, globalCfg)

	projectCfg, projectPath, err := loadProjectConfig(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = mergeConfig(cfg, projectCfg)

	cfg = mergeConfig(cfg, input.Overrides)

	hash, err := validateConfig(cfg)
	if err != nil {
		return Config{}, err
	}

	cfg.Hash = hash
	cfg.EffectiveCwd = workDir

	if cfg.DataFile != "" {
		if filepath.IsAbs(cfg.DataFile) {
			cfg.DataFileAbs = cfg.DataFile
		} else {
			cfg.DataFileAbs = filepath.Join(workDir, cfg.DataFile)
		}
	}

	return cfg, nil
}

// loadOptionalConfig loads a config file if it exists.
// Returns the config, the path if loaded, and any error.
func loadOptionalConfig(path string) (Config, string, error) {
	if path == "" {
		return Config{}, "", nil
	}

	cfg, loaded, err := loadConfigFile(path, false)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	return cfg, path, nil
}

// loadProjectConfig loads the project config file (.cmn.json) or an explicit config file.
func loadProjectConfig(workDir, configPath string) (Config, string, error) {
	if configPath == "" {
		return loadOptionalConfig(filepath.Join(workDir, ConfigFileName))
	}

	cfgFile := configPath
	if !filepath.IsAbs(cfgFile) {
		cfgFile = filepath.Join(workDir, cfgFile)
	}

	// Check existence first to provide a clear "not found" error
	_, statErr := os.Stat(cfgFile)
	if statErr != nil {
		return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
	}

	cfg, _, err := loadConfigFile(cfgFile, true)
	if err != nil {
		return Config{}, "", err
	}

	return cfg, cfgFile, nil
}

// loadConfigFile loads a config file. If mustExist is false, missing files return zero config.
// Returns the config, whether file was loaded, and any error.
func loadConfigFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if mustExist {
			return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return Config{}, false, nil
	}

	cfg, parseErr := parseConfig(data)
	if parseErr != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	return cfg, true, nil
}

func parseConfig(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	unmarshalErr := json.Unmarshal(standardized, &cfg)
	if unmarshalErr != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	return cfg, nil
}

func mergeConfig(base, overlay Config) Config {
	if overlay.Algorithm != "" {
		base.Algorithm = overlay.Algorithm
	}

	if overlay.Cost != nil {
		base.Cost = overlay.Cost
	}

	if overlay.HashLen != nil {
		base.HashLen = overlay.HashLen
	}

	if overlay.DataFile != "" {
		base.DataFile = overlay.DataFile
	}

	return base
}

// validateConfig checks the merged config and resolves the hash config.
// Values that would make every digest invalid are rejected here rather than
// surfacing later as invalid constants.
func validateConfig(cfg Config) (cmn.HashConfig, error) {
	alg, ok := cmn.ParseAlgorithm(cfg.Algorithm)
	if !ok {
		return cmn.HashConfig{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Algorithm)
	}

	if cfg.Cost == nil || *cfg.Cost == 0 {
		return cmn.HashConfig{}, ErrCostZero
	}

	if cfg.HashLen == nil || *cfg.HashLen <= 0 || *cfg.HashLen > alg.MaxLen() {
		return cmn.HashConfig{}, fmt.Errorf("%w: must be 1-%d for %s", ErrHashLenRange, alg.MaxLen(), alg)
	}

	return cmn.NewHashConfig(alg, *cfg.Cost, *cfg.HashLen), nil
}

// FormatConfig returns the config as formatted JSON.
func FormatConfig(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format config: %w", err)
	}

	return string(data), nil
}
