package cli

import (
	"bytes"
	"testing"

	"github.com/gridds/bidds/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		args         []string
		expectExit   bool
		expectErr    string
		expectConfig func(t *testing.T, cfg *app.Config)
	}{
		{
			name: "validate with defaults",
			args: []string{"validate", "model.json"},
			expectConfig: func(t *testing.T, cfg *app.Config) {
				assert.Equal(t, app.CommandValidate, cfg.Command)
				assert.Equal(t, "model.json", cfg.InputPath)
				assert.Equal(t, "Model", cfg.Entity)
				assert.True(t, cfg.ByAlias)
				assert.Equal(t, "  ", cfg.Indent)
			},
		},
		{
			name: "schema with entity and output",
			args: []string{"-entity", "Generator", "-out", "gen.schema.json", "schema"},
			expectConfig: func(t *testing.T, cfg *app.Config) {
				assert.Equal(t, app.CommandSchema, cfg.Command)
				assert.Equal(t, "Generator", cfg.Entity)
				assert.Equal(t, "gen.schema.json", cfg.OutputPath)
			},
		},
		{
			name: "convert with flags",
			args: []string{"-by-alias=false", "-indent", "", "-out", "model.json", "convert", "SourceData"},
			expectConfig: func(t *testing.T, cfg *app.Config) {
				assert.Equal(t, app.CommandConvert, cfg.Command)
				assert.Equal(t, "SourceData", cfg.InputPath)
				assert.False(t, cfg.ByAlias)
				assert.Empty(t, cfg.Indent)
			},
		},
		{
			name:       "no arguments prints usage",
			args:       nil,
			expectExit: true,
		},
		{
			name:       "help flag",
			args:       []string{"-h"},
			expectExit: true,
		},
		{
			name:      "unknown command",
			args:      []string{"frobnicate", "x.json"},
			expectErr: "unknown command",
		},
		{
			name:      "validate without path",
			args:      []string{"validate"},
			expectErr: "requires an input path",
		},
		{
			name:      "convert without output",
			args:      []string{"convert", "SourceData"},
			expectErr: "convert requires -out",
		},
		{
			name:      "invalid log level",
			args:      []string{"-log-level", "loud", "validate", "model.json"},
			expectErr: "invalid log-level",
		},
		{
			name:      "invalid log format",
			args:      []string{"-log-format", "xml", "validate", "model.json"},
			expectErr: "invalid log-format",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}

			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.expectErr != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 2, exitErr.Code)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			if tc.expectExit {
				assert.True(t, shouldExit)
				return
			}
			require.NotNil(t, cfg)
			tc.expectConfig(t, cfg)
		})
	}
}
