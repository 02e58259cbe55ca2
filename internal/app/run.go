package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gridds/bidds/internal/bidds"
	"github.com/gridds/bidds/internal/ctxlog"
	"github.com/gridds/bidds/internal/export"
	"github.com/gridds/bidds/internal/fsutil"
	"github.com/gridds/bidds/internal/loader"
	"github.com/gridds/bidds/internal/model"
	"github.com/gridds/bidds/internal/schema"
	"github.com/gridds/bidds/internal/serialize"
	"github.com/gridds/bidds/internal/tabular"
)

// genColumns maps the RTS source data column names onto the Generator
// entity's field names. Headers already using field names pass through
// untouched.
var genColumns = map[string]string{
	"GEN UID": "uid",
	"Bus ID":  "bus",
}

// Run executes the main application logic based on the provided
// configuration.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", cfg.Command)

	var err error
	switch cfg.Command {
	case CommandValidate:
		err = a.runValidate(ctx, cfg)
	case CommandSchema:
		err = a.runSchema(ctx, cfg)
	case CommandConvert:
		err = a.runConvert(ctx, cfg)
	default:
		err = fmt.Errorf("unknown command %q", cfg.Command)
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}

// runValidate loads one record file, or every .json file under a directory,
// against the configured entity type. With -out set (single file only), the
// normalized canonical record is written back out.
func (a *App) runValidate(ctx context.Context, cfg *Config) error {
	et, err := a.entityType(cfg)
	if err != nil {
		return err
	}

	info, err := os.Stat(cfg.InputPath)
	if err != nil {
		return &loader.LoadError{Path: cfg.InputPath, Err: err}
	}

	if info.IsDir() {
		if cfg.OutputPath != "" {
			return fmt.Errorf("-out is only valid when validating a single file")
		}
		files, err := fsutil.FindFilesByExtension(cfg.InputPath, ".json")
		if err != nil {
			return fmt.Errorf("cannot scan %s: %w", cfg.InputPath, err)
		}
		if len(files) == 0 {
			a.logger.Warn("No .json record files found in path.", "path", cfg.InputPath)
			return nil
		}
		for _, file := range files {
			if _, err := loader.Load(ctx, et, file); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			fmt.Fprintf(a.outW, "%s: ok\n", file)
		}
		return nil
	}

	inst, err := loader.Load(ctx, et, cfg.InputPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.outW, "%s: ok\n", cfg.InputPath)

	if cfg.OutputPath != "" {
		record := serialize.Serialize(inst, serialize.Options{Aliases: cfg.ByAlias})
		return loader.Dump(ctx, record, cfg.OutputPath, cfg.Indent)
	}
	return nil
}

// runSchema exports the JSON Schema for the configured entity type, to -out
// or to the app's output stream.
func (a *App) runSchema(ctx context.Context, cfg *Config) error {
	et, err := a.entityType(cfg)
	if err != nil {
		return err
	}

	data, err := export.Schema(et, export.Options{Aliases: cfg.ByAlias, Indent: cfg.Indent})
	if err != nil {
		return err
	}

	if cfg.OutputPath != "" {
		if err := os.WriteFile(cfg.OutputPath, append(data, '\n'), 0o644); err != nil {
			return &loader.LoadError{Path: cfg.OutputPath, Err: err}
		}
		ctxlog.FromContext(ctx).Debug("Wrote schema document.", "path", cfg.OutputPath, "entity", et.Name())
		return nil
	}

	fmt.Fprintf(a.outW, "%s\n", data)
	return nil
}

// runConvert ingests CSV source data into a validated bid dataset model and
// writes the canonical model record to -out. The input is either a gen.csv
// file or a directory containing one.
func (a *App) runConvert(ctx context.Context, cfg *Config) error {
	genPath := cfg.InputPath
	info, err := os.Stat(genPath)
	if err != nil {
		return &loader.LoadError{Path: genPath, Err: err}
	}
	if info.IsDir() {
		genPath = filepath.Join(genPath, "gen.csv")
	} else if !strings.HasSuffix(genPath, ".csv") {
		return fmt.Errorf("convert expects a .csv file or a source directory, got %s", genPath)
	}

	rows, err := tabular.ReadRecords(genPath, genColumns)
	if err != nil {
		return err
	}
	a.logger.Debug("Read generator rows.", "path", genPath, "count", len(rows))

	generators := make([]any, len(rows))
	for i, row := range rows {
		generators[i] = row
	}
	raw := map[string]any{
		"network":  map[string]any{"generators": generators},
		"scenario": map[string]any{},
	}

	inst, err := model.Validate(ctx, bidds.ModelType, raw, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", genPath, err)
	}

	record := serialize.Serialize(inst, serialize.Options{Aliases: cfg.ByAlias})
	if err := loader.Dump(ctx, record, cfg.OutputPath, cfg.Indent); err != nil {
		return err
	}
	fmt.Fprintf(a.outW, "%s: wrote %d generators\n", cfg.OutputPath, len(rows))
	return nil
}

// entityType resolves the configured root entity type from the registry.
func (a *App) entityType(cfg *Config) (*schema.EntityType, error) {
	et, ok := a.registry.Lookup(cfg.Entity)
	if !ok {
		return nil, fmt.Errorf("unknown entity type %q; registered: %v", cfg.Entity, a.registry.Names())
	}
	return et, nil
}
