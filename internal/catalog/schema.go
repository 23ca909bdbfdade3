package catalog

import "fmt"

// DocumentType names one of the two catalog documents.
type DocumentType string

const (
	// DocumentTaxonomy is the tags/categories/subcategories document.
	DocumentTaxonomy DocumentType = "taxonomy"
	// DocumentResults is the array of catalog entries.
	DocumentResults DocumentType = "results"
)

// FieldType represents the expected type of a schema field.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeArray  FieldType = "array"
	FieldTypeObject FieldType = "object"
	FieldTypeURL    FieldType = "http(s) url"
)

// SchemaField describes a field for display purposes.
type SchemaField struct {
	Name        string
	Type        FieldType
	Required    bool
	Description string
	Children    []SchemaField
}

// Schema describes the expected shape of a catalog document.
type Schema struct {
	Type        DocumentType
	Description string
	Fields      []SchemaField
}

// TaxonomySchema describes the taxonomy document.
var TaxonomySchema = Schema{
	Type:        DocumentTaxonomy,
	Description: "Controlled vocabulary of tags, categories and subcategories",
	Fields: []SchemaField{
		{Name: "tags", Type: FieldTypeArray, Required: true, Description: "Allowed entry tags (non-empty strings)"},
		{
			Name:     "categories",
			Type:     FieldTypeObject,
			Required: true,
			Children: []SchemaField{
				{
					Name:        "definitions",
					Type:        FieldTypeArray,
					Required:    true,
					Description: "Category objects",
					Children: []SchemaField{
						{Name: "id", Type: FieldTypeString, Required: true, Description: "Unique across categories"},
						{Name: "name", Type: FieldTypeString, Required: true, Description: "Unique across categories"},
						{
							Name:        "subcategories",
							Type:        FieldTypeArray,
							Required:    true,
							Description: "At least one subcategory",
							Children: []SchemaField{
								{Name: "id", Type: FieldTypeString, Required: true, Description: "Unique across the whole taxonomy"},
								{Name: "name", Type: FieldTypeString, Required: true},
							},
						},
					},
				},
			},
		},
	},
}

// ResultsSchema describes one entry of the results document.
var ResultsSchema = Schema{
	Type:        DocumentResults,
	Description: "Array of catalog entries; each needs a website, repos or packages",
	Fields: []SchemaField{
		{Name: "name", Type: FieldTypeString, Required: true},
		{Name: "description", Type: FieldTypeString, Required: true},
		{Name: "llmstext", Type: FieldTypeString, Description: "Optional"},
		{Name: "website", Type: FieldTypeString, Description: "Optional"},
		{Name: "repos", Type: FieldTypeArray, Description: "Optional list of http(s) URLs", Children: []SchemaField{{Name: "[]", Type: FieldTypeURL}}},
		{Name: "packages", Type: FieldTypeArray, Description: "Optional list of http(s) URLs", Children: []SchemaField{{Name: "[]", Type: FieldTypeURL}}},
		{Name: "tags", Type: FieldTypeArray, Required: true, Description: "Non-empty; every tag must be in taxonomy.tags"},
		{Name: "subcategory_id", Type: FieldTypeString, Required: true, Description: "Must match a taxonomy subcategory id"},
		{Name: "category", Type: FieldTypeString, Description: "Legacy; must name the subcategory's parent by id or name"},
	},
}

// GetSchema returns the schema for a document type.
func GetSchema(docType DocumentType) (*Schema, error) {
	switch docType {
	case DocumentTaxonomy:
		return &TaxonomySchema, nil
	case DocumentResults:
		return &ResultsSchema, nil
	default:
		return nil, fmt.Errorf("unknown document type: %s", docType)
	}
}

// ValidDocumentTypes returns the accepted document type names.
func ValidDocumentTypes() []string {
	return []string{string(DocumentTaxonomy), string(DocumentResults)}
}
