package app

import (
	"errors"
	"fmt"
)

// Commands understood by the application.
const (
	CommandValidate = "validate"
	CommandSchema   = "schema"
	CommandConvert  = "convert"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command    string // validate, schema or convert
	InputPath  string // record file or directory (validate), CSV source (convert)
	OutputPath string // destination file; "" writes to the app's output stream
	Entity     string // root entity type name

	ByAlias bool   // use external aliases in serialized output
	Indent  string // JSON indentation for written documents

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Command {
	case CommandValidate, CommandConvert:
		if cfg.InputPath == "" {
			return nil, fmt.Errorf("command %q requires an input path", cfg.Command)
		}
	case CommandSchema:
		// Schema export needs no input; it works from the registry alone.
	case "":
		return nil, errors.New("a command is required")
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	if cfg.Command == CommandConvert && cfg.OutputPath == "" {
		return nil, errors.New("convert requires -out")
	}

	if cfg.Entity == "" {
		cfg.Entity = "Model"
	}

	return &cfg, nil
}
