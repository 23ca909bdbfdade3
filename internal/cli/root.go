// catalogcheck - Structural and referential validation for the resource catalog
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/catalogcheck

// Package cli provides the Cobra-based command line for catalogcheck. The root
// command validates the catalog; schema and version are informational.
package cli

import (
	"github.com/ariel-frischer/catalogcheck/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Each call returns an independent tree so
// tests can execute commands in parallel.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catalogcheck",
		Short: "Validate the resource catalog against its taxonomy",
		Long: `Validate the resource catalog against its taxonomy.

Checks that the taxonomy is well formed (unique category ids and names,
globally unique subcategory ids, a tag list) and that every catalog entry
has its required fields, well-formed http(s) links, at least one way to be
discovered, known tags, a known subcategory and, when the legacy category
field is set, a category matching that subcategory's parent.

Every defect is printed as it is found.

Exit Codes:
  0 - Success (catalog is valid)
  1 - Validation failed (catalog has errors or a document could not be loaded)
  3 - Invalid arguments or configuration`,
		Example: `  # Validate catalog/taxonomy.json and catalog/resources.json
  catalogcheck

  # Validate documents elsewhere
  catalogcheck --taxonomy data/taxonomy.yaml --results data/resources.json

  # Show entry counts on success
  catalogcheck -v`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runValidateCmd,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultConfigPath, "Path to config file")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.Flags().String("root", "", "Directory the document paths are relative to")
	rootCmd.Flags().String("taxonomy", "", "Path to the taxonomy document")
	rootCmd.Flags().String("results", "", "Path to the results document")
	rootCmd.Flags().BoolP("verbose", "v", false, "Print a summary of what was checked")

	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
