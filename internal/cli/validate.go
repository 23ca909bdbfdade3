package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ariel-frischer/catalogcheck/internal/catalog"
	"github.com/ariel-frischer/catalogcheck/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// validateOptions collects the flags that affect a validation run.
type validateOptions struct {
	configPath string
	root       string
	taxonomy   string
	results    string
	verbose    bool
	debug      bool
	noColor    bool
}

// apply overrides configuration values with flags that were set.
func (o validateOptions) apply(cfg *config.Configuration) {
	if o.root != "" {
		cfg.Root = o.root
	}
	if o.taxonomy != "" {
		cfg.TaxonomyPath = o.taxonomy
	}
	if o.results != "" {
		cfg.ResultsPath = o.results
	}
	if o.noColor {
		cfg.NoColor = true
	}
}

func runValidateCmd(cmd *cobra.Command, _ []string) error {
	var opts validateOptions
	opts.configPath, _ = cmd.Flags().GetString("config")
	opts.root, _ = cmd.Flags().GetString("root")
	opts.taxonomy, _ = cmd.Flags().GetString("taxonomy")
	opts.results, _ = cmd.Flags().GetString("results")
	opts.verbose, _ = cmd.Flags().GetBool("verbose")
	opts.debug, _ = cmd.Flags().GetBool("debug")
	opts.noColor, _ = cmd.Flags().GetBool("no-color")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return runValidate(ctx, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// runValidate executes one validation run and maps its outcome to an exit error.
func runValidate(ctx context.Context, opts validateOptions, out, errOut io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	log := newLogger(opts.debug, errOut)
	defer func() { _ = log.Sync() }()

	rep := catalog.NewReporter(out, errOut, cfg.NoColor)
	validator := catalog.NewValidator(cfg.TaxonomyFile(), cfg.ResultsFile(), log)

	summary, err := validator.Run(ctx, rep)
	if err != nil {
		// The cause has already been reported; nothing else can be checked.
		log.Debug("validation stopped early", zap.Error(err),
			zap.Bool("load_failed", errors.Is(err, catalog.ErrLoadFailed)))
		return NewExitError(ExitValidationFailed)
	}

	if err := rep.Finish(); err != nil {
		return NewExitError(ExitValidationFailed)
	}

	if opts.verbose {
		printSummary(summary, out)
	}
	return nil
}

// summaryOrder fixes the display order of summary counts.
var summaryOrder = []string{"tags", "categories", "subcategories", "entries"}

func printSummary(summary *catalog.Summary, out io.Writer) {
	counts := summary.Counts()
	fmt.Fprintf(out, "\nSummary:\n")
	for _, key := range summaryOrder {
		fmt.Fprintf(out, "  %s: %d\n", key, counts[key])
	}
}
