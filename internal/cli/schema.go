package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/ariel-frischer/catalogcheck/internal/catalog"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [taxonomy|results]",
		Short: "Print the expected document shapes",
		Long: `Print the expected shape of the taxonomy and results documents.

With no argument both schemas are printed.`,
		Example: `  catalogcheck schema
  catalogcheck schema results`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: catalog.ValidDocumentTypes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			types := []catalog.DocumentType{catalog.DocumentTaxonomy, catalog.DocumentResults}
			if len(args) == 1 {
				types = []catalog.DocumentType{catalog.DocumentType(args[0])}
			}
			for i, docType := range types {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := printSchema(docType, cmd.OutOrStdout()); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\nValid types: %s\n",
						err, strings.Join(catalog.ValidDocumentTypes(), ", "))
					return NewExitError(ExitInvalidArguments)
				}
			}
			return nil
		},
	}
}

// printSchema prints the schema for a document type.
func printSchema(docType catalog.DocumentType, out io.Writer) error {
	schema, err := catalog.GetSchema(docType)
	if err != nil {
		return fmt.Errorf("getting schema for %s: %w", docType, err)
	}

	fmt.Fprintf(out, "Schema for %s documents\n", docType)
	fmt.Fprintf(out, "%s\n\n", strings.Repeat("=", 40))
	fmt.Fprintf(out, "%s\n\n", schema.Description)

	fmt.Fprintf(out, "Fields:\n")
	fmt.Fprintf(out, "%s\n", strings.Repeat("-", 40))

	for _, field := range schema.Fields {
		printSchemaField(field, "", out)
	}
	return nil
}

// printSchemaField prints a single schema field with indentation.
func printSchemaField(field catalog.SchemaField, indent string, out io.Writer) {
	required := ""
	if field.Required {
		required = " (required)"
	}

	fmt.Fprintf(out, "%s%s: %s%s\n", indent, field.Name, field.Type, required)

	if field.Description != "" {
		fmt.Fprintf(out, "%s  # %s\n", indent, field.Description)
	}

	for _, child := range field.Children {
		printSchemaField(child, indent+"  ", out)
	}
}
