package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Documents holds the two decoded catalog documents.
type Documents struct {
	Taxonomy any
	Results  any
}

// LoadDocument reads the file at path and decodes it. Files ending in .yaml or
// .yml are decoded as YAML, everything else as JSON.
func LoadDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc any
	if isYAMLPath(path) {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML at %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				line, column := offsetToLineColumn(data, syntaxErr.Offset)
				return nil, fmt.Errorf("invalid JSON at %s:%d:%d: %w", path, line, column, err)
			}
			return nil, fmt.Errorf("invalid JSON at %s: %w", path, err)
		}
	}

	if doc == nil {
		return nil, fmt.Errorf("document at %s is empty", path)
	}
	return doc, nil
}

// LoadDocuments starts both loads before waiting on either. Every load error is
// passed to report, taxonomy first, once both loads have finished. The returned
// error wraps ErrLoadFailed when either document could not be loaded.
func LoadDocuments(ctx context.Context, taxonomyPath, resultsPath string, report func(*Issue)) (*Documents, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loading catalog documents: %w", err)
	}

	var (
		docs                Documents
		taxonomyErr, resErr error
		g                   errgroup.Group
	)
	g.Go(func() error {
		docs.Taxonomy, taxonomyErr = LoadDocument(taxonomyPath)
		return taxonomyErr
	})
	g.Go(func() error {
		docs.Results, resErr = LoadDocument(resultsPath)
		return resErr
	})
	if err := g.Wait(); err == nil {
		return &docs, nil
	}

	for _, err := range []error{taxonomyErr, resErr} {
		if err != nil {
			report(failure("", err.Error()))
		}
	}
	return nil, fmt.Errorf("loading catalog documents: %w", ErrLoadFailed)
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// offsetToLineColumn converts a json.SyntaxError offset into the 1-based line
// and column of the offending byte. The offset counts the bytes read up to and
// including that byte.
func offsetToLineColumn(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	if offset > 0 {
		offset--
	}
	line, column := 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}
