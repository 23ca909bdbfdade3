// Package catalog checks a resource catalog against its taxonomy.
//
// A run loads the taxonomy and results documents, indexes the taxonomy's tags,
// categories and subcategories, and then checks every results entry for
// required fields, link shape, discoverability and references into the
// taxonomy. Every issue is streamed through a Reporter as soon as it is found
// so one run surfaces every defect.
package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Summary describes what a run looked at.
type Summary struct {
	Tags          int
	Categories    int
	Subcategories int
	Entries       int
}

// Counts returns the summary as labelled counts for display.
func (s *Summary) Counts() map[string]int {
	return map[string]int{
		"tags":          s.Tags,
		"categories":    s.Categories,
		"subcategories": s.Subcategories,
		"entries":       s.Entries,
	}
}

// Validator runs the catalog checks for one pair of documents.
type Validator struct {
	TaxonomyPath string
	ResultsPath  string

	log *zap.Logger
}

// NewValidator creates a validator for the given document paths. A nil logger
// disables debug output.
func NewValidator(taxonomyPath, resultsPath string, log *zap.Logger) *Validator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Validator{
		TaxonomyPath: taxonomyPath,
		ResultsPath:  resultsPath,
		log:          log,
	}
}

// Run loads both documents and checks them, streaming issues to rep. It
// returns an error only when the run had to stop early (a document failed to
// load, or the results document is not an array); ordinary failures are
// recorded on rep. Callers finish the run with rep.Finish.
func (v *Validator) Run(ctx context.Context, rep *Reporter) (*Summary, error) {
	v.log.Debug("loading catalog documents",
		zap.String("taxonomy", v.TaxonomyPath),
		zap.String("results", v.ResultsPath))

	docs, err := LoadDocuments(ctx, v.TaxonomyPath, v.ResultsPath, rep.Fail)
	if err != nil {
		return nil, err
	}

	before := rep.Failures() + rep.Warnings()
	idx := BuildIndex(docs.Taxonomy, v.TaxonomyPath, rep.Report)
	v.log.Debug("taxonomy indexed",
		zap.Int("tags", len(idx.Tags)),
		zap.Int("categories", idx.Categories),
		zap.Int("subcategories", len(idx.Subcategories)),
		zap.Int("issues", rep.Failures()+rep.Warnings()-before))

	results, ok := asArray(docs.Results)
	if !ok {
		rep.Fail(failure("", fmt.Sprintf("results document must be an array at %s", v.ResultsPath)))
		return nil, fmt.Errorf("checking %s: %w", v.ResultsPath, ErrResultsNotArray)
	}

	CheckEntries(results, idx, rep.Report)
	v.log.Debug("entries checked",
		zap.Int("entries", len(results)),
		zap.Int("failures", rep.Failures()))

	return &Summary{
		Tags:          len(idx.Tags),
		Categories:    idx.Categories,
		Subcategories: len(idx.Subcategories),
		Entries:       len(results),
	}, nil
}
