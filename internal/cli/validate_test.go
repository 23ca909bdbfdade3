// Package cli_test tests the root validation command and its exit codes.
// Related: internal/cli/validate.go, internal/cli/root.go, internal/cli/exit_codes.go
// Tags: cli, validate, exit-codes, flags, config
package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTaxonomy = `{"tags": ["cli", "storage"], "categories": {"definitions": [
	{"id": "c1", "name": "Core", "subcategories": [{"id": "s1", "name": "Sub1"}]}
]}}`

const validResults = `[{"name": "X", "description": "Y", "website": "https://x.com", "tags": ["cli"], "subcategory_id": "s1"}]`

// writeCatalog creates catalog/taxonomy.json and catalog/resources.json under
// a temp root and returns the root.
func writeCatalog(t *testing.T, taxonomy, results string) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "catalog")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "taxonomy.json"), []byte(taxonomy), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resources.json"), []byte(results), 0644))
	return root
}

func TestRunValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		results      string
		verbose      bool
		wantCode     int
		wantOut      []string
		wantErrOut   []string
		wantNoErrOut bool
	}{
		"valid catalog": {
			results:      validResults,
			wantCode:     ExitSuccess,
			wantOut:      []string{"Validation passed."},
			wantNoErrOut: true,
		},
		"valid catalog verbose": {
			results:  validResults,
			verbose:  true,
			wantCode: ExitSuccess,
			wantOut:  []string{"Validation passed.", "Summary:", "  tags: 2", "  categories: 1", "  subcategories: 1", "  entries: 1"},
		},
		"invalid entry": {
			results:    `[{"name": "X", "description": "Y", "tags": ["cli"], "subcategory_id": "unknown"}]`,
			wantCode:   ExitValidationFailed,
			wantErrOut: []string{`❌ results[0].subcategory_id "unknown" does not match any taxonomy subcategory id`, "Validation failed."},
		},
		"malformed results": {
			results:    `[{`,
			wantCode:   ExitValidationFailed,
			wantErrOut: []string{"invalid JSON at"},
		},
		"results not an array": {
			results:    `{}`,
			wantCode:   ExitValidationFailed,
			wantErrOut: []string{"results document must be an array"},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			root := writeCatalog(t, testTaxonomy, tc.results)
			opts := validateOptions{
				configPath: filepath.Join(root, "no-config.json"),
				root:       root,
				verbose:    tc.verbose,
				noColor:    true,
			}

			var out, errOut bytes.Buffer
			err := runValidate(context.Background(), opts, &out, &errOut)
			assert.Equal(t, tc.wantCode, ExitCode(err))
			for _, want := range tc.wantOut {
				assert.Contains(t, out.String(), want)
			}
			for _, want := range tc.wantErrOut {
				assert.Contains(t, errOut.String(), want)
			}
			if tc.wantNoErrOut {
				assert.Empty(t, errOut.String())
			}
		})
	}
}

func TestRunValidate_FlagPathsOverrideConfig(t *testing.T) {
	t.Parallel()

	root := writeCatalog(t, testTaxonomy, `[]`)
	configPath := filepath.Join(root, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"results_path": "missing.json"}`), 0644))

	var out, errOut bytes.Buffer
	err := runValidate(context.Background(), validateOptions{
		configPath: configPath,
		root:       root,
		noColor:    true,
	}, &out, &errOut)
	assert.Equal(t, ExitValidationFailed, ExitCode(err))
	assert.Contains(t, errOut.String(), "missing.json")

	out.Reset()
	errOut.Reset()
	err = runValidate(context.Background(), validateOptions{
		configPath: configPath,
		root:       root,
		results:    "catalog/resources.json",
		noColor:    true,
	}, &out, &errOut)
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Validation passed.")
}

func TestRunValidate_BadConfig(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"root": ""}`), 0644))

	var out, errOut bytes.Buffer
	err := runValidate(context.Background(), validateOptions{configPath: configPath}, &out, &errOut)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
	assert.Contains(t, errOut.String(), "config validation failed")
	assert.NotContains(t, errOut.String(), "Error loading config")
}

func TestRunValidate_FlagsOverrideEmptyConfigValues(t *testing.T) {
	t.Parallel()

	root := writeCatalog(t, testTaxonomy, validResults)
	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"root": "", "taxonomy_path": ""}`), 0644))

	var out, errOut bytes.Buffer
	err := runValidate(context.Background(), validateOptions{
		configPath: configPath,
		root:       root,
		taxonomy:   "catalog/taxonomy.json",
		noColor:    true,
	}, &out, &errOut)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Validation passed.")
	assert.Empty(t, errOut.String())
}

func TestRunValidate_DebugLogging(t *testing.T) {
	t.Parallel()

	root := writeCatalog(t, testTaxonomy, validResults)

	var out, errOut bytes.Buffer
	err := runValidate(context.Background(), validateOptions{
		configPath: filepath.Join(root, "no-config.json"),
		root:       root,
		debug:      true,
		noColor:    true,
	}, &out, &errOut)
	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "taxonomy indexed")
	assert.Contains(t, errOut.String(), "entries checked")
}

func TestRootCmd_Execute(t *testing.T) {
	t.Parallel()

	root := writeCatalog(t, testTaxonomy, validResults)

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--config", filepath.Join(root, "none.json"), "--root", root, "--no-color"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Validation passed.")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"catalog/resources.json"})

	assert.Error(t, cmd.Execute())
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitInvalidArguments, ExitCode(NewExitError(ExitInvalidArguments)))
	assert.Equal(t, ExitValidationFailed, ExitCode(assert.AnError))
	assert.Equal(t, "exit code 3", NewExitError(3).Error())
}
