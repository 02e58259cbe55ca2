// Package loader reads JSON record files into validated instances and writes
// canonical records back out.
//
// Each load establishes its own resolution context rooted at the loaded
// file's parent directory, so relative file references inside a record
// resolve against the referencing file's location no matter where the
// process is running from. The context is a value scoped to the call: it
// cannot leak to sibling or subsequent loads, on any exit path.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gridds/bidds/internal/ctxlog"
	"github.com/gridds/bidds/internal/model"
	"github.com/gridds/bidds/internal/pathres"
	"github.com/gridds/bidds/internal/schema"
)

// Load reads a JSON record file and validates it against an entity type.
// It fails with *LoadError if the file is unreadable, *MalformedInputError
// if it is not a single JSON object, or *model.Violation if the content
// does not conform to the entity type.
func Load(ctx context.Context, et *schema.EntityType, path string) (*model.Instance, error) {
	logger := ctxlog.FromContext(ctx)

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	res, err := pathres.New(filepath.Dir(abs))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	raw, err := ReadRecord(abs)
	if err != nil {
		return nil, err
	}

	inst, err := model.Validate(ctx, et, raw, res)
	if err != nil {
		logger.Error("Failed to validate record file.", "path", abs, "entity", et.Name(), "error", err)
		return nil, err
	}

	logger.Debug("Loaded record file.", "path", abs, "entity", et.Name())
	return inst, nil
}

// ReadRecord reads and decodes a JSON record file without validating it.
// The top-level value must be an object, and the file must hold exactly one
// document.
func ReadRecord(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	// Preserve numeric fidelity; large integers must not round-trip through
	// float64.
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &MalformedInputError{Path: path, Err: err}
	}
	if dec.More() {
		return nil, &MalformedInputError{Path: path, Err: fmt.Errorf("trailing data after JSON document")}
	}

	rec, ok := raw.(map[string]any)
	if !ok {
		return nil, &MalformedInputError{Path: path, Err: fmt.Errorf("top-level value is not a JSON object")}
	}
	return rec, nil
}

// Dump writes a canonical record as a JSON document, overwriting any
// existing file without merging. indent is the per-level indentation string;
// empty means compact output.
func Dump(ctx context.Context, record map[string]any, path string, indent string) error {
	logger := ctxlog.FromContext(ctx)

	var (
		data []byte
		err  error
	)
	if indent != "" {
		data, err = json.MarshalIndent(record, "", indent)
	} else {
		data, err = json.Marshal(record)
	}
	if err != nil {
		return fmt.Errorf("cannot encode record for %s: %w", path, err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return &LoadError{Path: path, Err: err}
	}

	logger.Debug("Dumped record file.", "path", path)
	return nil
}
