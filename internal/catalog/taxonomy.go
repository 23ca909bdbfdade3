package catalog

import (
	"fmt"
	"strings"
)

// Parent identifies the category that owns a subcategory.
type Parent struct {
	ID   string
	Name string
}

// Index holds the lookups derived from a taxonomy document. It is built once
// per run and read-only afterwards.
type Index struct {
	// Tags is the set of allowed entry tags (trimmed).
	Tags map[string]struct{}
	// CategoryRefs holds every category id and every category name.
	CategoryRefs map[string]struct{}
	// Subcategories maps a subcategory id to its owning category.
	Subcategories map[string]Parent
	// Categories counts categories that were registered.
	Categories int
}

func newIndex() *Index {
	return &Index{
		Tags:          make(map[string]struct{}),
		CategoryRefs:  make(map[string]struct{}),
		Subcategories: make(map[string]Parent),
	}
}

// HasTag reports whether tag is in the taxonomy's tag list.
func (idx *Index) HasTag(tag string) bool {
	_, ok := idx.Tags[tag]
	return ok
}

// HasCategory reports whether ref is a known category id or name.
func (idx *Index) HasCategory(ref string) bool {
	_, ok := idx.CategoryRefs[ref]
	return ok
}

// ParentOf returns the category owning subcategory id.
func (idx *Index) ParentOf(id string) (Parent, bool) {
	p, ok := idx.Subcategories[id]
	return p, ok
}

// BuildIndex walks the taxonomy document once and returns its lookups. Each
// problem is passed to report as soon as it is found. Problems never stop the
// walk: malformed sections are treated as empty and the first occurrence of a
// duplicated id or name stays authoritative.
func BuildIndex(taxonomy any, path string, report func(...*Issue)) *Index {
	b := &indexBuilder{
		idx:       newIndex(),
		report:    report,
		seenIDs:   make(map[string]struct{}),
		seenNames: make(map[string]struct{}),
	}

	root, _ := asObject(taxonomy)
	b.addTags(root, path)

	categories, _ := asObject(root["categories"])
	defs, ok := asArray(categories["definitions"])
	if !ok {
		report(failure("", fmt.Sprintf("taxonomy.categories.definitions must be an array in %s", path)))
	}
	for i, def := range defs {
		b.addCategory(def, fmt.Sprintf("taxonomy.categories.definitions[%d]", i))
	}

	return b.idx
}

// indexBuilder carries the state of a single BuildIndex walk.
type indexBuilder struct {
	idx       *Index
	report    func(...*Issue)
	seenIDs   map[string]struct{}
	seenNames map[string]struct{}
}

// addTags registers the trimmed taxonomy tags. Any malformed element
// invalidates the whole list.
func (b *indexBuilder) addTags(root map[string]any, path string) {
	raw, ok := asArray(root["tags"])
	valid := ok
	for _, t := range raw {
		if !isNonEmptyString(t) {
			valid = false
			break
		}
	}
	if !valid {
		b.report(failure("", fmt.Sprintf("taxonomy.tags must be an array of non-empty strings in %s", path)))
		return
	}
	for _, t := range raw {
		b.idx.Tags[strings.TrimSpace(t.(string))] = struct{}{}
	}
}

func (b *indexBuilder) addCategory(def any, where string) {
	cat, ok := asObject(def)
	if !ok {
		b.report(failure(where, "must be an object"))
		return
	}

	if !isNonEmptyString(cat["id"]) {
		b.report(failure(where+".id", "must be a non-empty string"))
		return
	}
	id := cat["id"].(string)
	if _, dup := b.seenIDs[id]; dup {
		b.report(failure(where+".id", fmt.Sprintf("is duplicated: %q", id)))
	}
	b.seenIDs[id] = struct{}{}

	if !isNonEmptyString(cat["name"]) {
		b.report(failure(where+".name", "must be a non-empty string"))
		return
	}
	name := cat["name"].(string)
	if _, dup := b.seenNames[name]; dup {
		b.report(failure(where+".name", fmt.Sprintf("is duplicated: %q", name)))
	}
	b.seenNames[name] = struct{}{}

	b.idx.CategoryRefs[id] = struct{}{}
	b.idx.CategoryRefs[name] = struct{}{}
	b.idx.Categories++

	subs, ok := asArray(cat["subcategories"])
	if !ok || len(subs) == 0 {
		b.report(failure(where+".subcategories", "must be a non-empty array"))
		return
	}

	parent := Parent{ID: id, Name: name}
	for j, sub := range subs {
		b.addSubcategory(sub, fmt.Sprintf("%s.subcategories[%d]", where, j), parent)
	}
}

func (b *indexBuilder) addSubcategory(def any, where string, parent Parent) {
	sub, ok := asObject(def)
	if !ok {
		b.report(failure(where, "must be an object"))
		return
	}

	if !isNonEmptyString(sub["id"]) {
		b.report(failure(where+".id", "must be a non-empty string"))
		return
	}
	id := sub["id"].(string)

	if !isNonEmptyString(sub["name"]) {
		b.report(failure(where+".name", "must be a non-empty string"))
	}

	if _, dup := b.idx.Subcategories[id]; dup {
		b.report(failure(where+".id", fmt.Sprintf("is duplicated across taxonomy: %q", id)))
		return
	}
	b.idx.Subcategories[id] = parent
}
