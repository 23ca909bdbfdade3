package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// sampleTaxonomy is a small well-formed taxonomy used across tests.
const sampleTaxonomy = `{
	"tags": ["cli", "storage"],
	"categories": {
		"definitions": [
			{"id": "c1", "name": "Core", "subcategories": [{"id": "s1", "name": "Sub1"}]},
			{"id": "c2", "name": "Data", "subcategories": [{"id": "s2", "name": "Sub2"}, {"id": "s3", "name": "Sub3"}]}
		]
	}
}`

// decode parses a JSON literal the same way LoadDocument does.
func decode(t *testing.T, src string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(src), &v))
	return v
}

// sampleIndex builds the index for sampleTaxonomy and requires it to be clean.
func sampleIndex(t *testing.T) *Index {
	t.Helper()
	idx, issues := indexOf(decode(t, sampleTaxonomy), "taxonomy.json")
	require.Empty(t, issues)
	return idx
}

// indexOf builds an index and collects every issue reported along the way.
func indexOf(taxonomy any, path string) (*Index, []*Issue) {
	var issues []*Issue
	idx := BuildIndex(taxonomy, path, func(reported ...*Issue) {
		issues = append(issues, reported...)
	})
	return idx, issues
}

// messages renders issues the way the reporter prints them.
func messages(issues []*Issue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.Error())
	}
	return out
}

// writeFile writes content to name inside dir and returns the full path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
