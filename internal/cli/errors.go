package cli

import "errors"

// Error variables for CLI operations.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrUnknownAlgorithm   = errors.New("unknown hash algorithm")
	ErrCostZero           = errors.New("cost must be at least 1")
	ErrHashLenRange       = errors.New("hash-len out of range")
	ErrDataFileRead       = errors.New("cannot read data file")
	ErrNameRequired       = errors.New("constant name is required")
	ErrConstantNotFound   = errors.New("constant not found")
	ErrInputRequired      = errors.New("input text is required")
	ErrFileRequired       = errors.New("file path is required")
	ErrUnknownFormat      = errors.New("unknown format (want json, yaml or sqlite)")
	ErrUnknownCommand     = errors.New("unknown command")
)
