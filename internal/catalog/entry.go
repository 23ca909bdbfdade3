package catalog

import (
	"fmt"
)

// entryCheck inspects one field (or field combination) of an entry.
type entryCheck func(entry map[string]any, where string, idx *Index) []*Issue

// entryChecks run in this order for every entry; their issues are reported in
// the same order.
var entryChecks = []entryCheck{
	checkName,
	checkDescription,
	checkLLMSText,
	checkLinkList("repos"),
	checkLinkList("packages"),
	checkDiscoverable,
	checkTags,
	checkSubcategory,
	checkCategory,
}

// CheckEntries validates every element of the results array. report is called
// once per entry with that entry's issues, so output streams while the array
// is walked.
func CheckEntries(results []any, idx *Index, report func(...*Issue)) {
	for i, entry := range results {
		report(CheckEntry(entry, i, idx)...)
	}
}

// CheckEntry validates a single results entry at position i.
func CheckEntry(entry any, i int, idx *Index) []*Issue {
	where := fmt.Sprintf("results[%d]", i)

	obj, ok := asObject(entry)
	if !ok {
		return []*Issue{failure(where, "must be an object")}
	}

	var issues []*Issue
	for _, check := range entryChecks {
		issues = append(issues, check(obj, where, idx)...)
	}
	return issues
}

func checkName(entry map[string]any, where string, _ *Index) []*Issue {
	if !isNonEmptyString(entry["name"]) {
		return []*Issue{failure(where+".name", "must be a non-empty string")}
	}
	return nil
}

func checkDescription(entry map[string]any, where string, _ *Index) []*Issue {
	if !isNonEmptyString(entry["description"]) {
		return []*Issue{failure(where+".description", "must be a non-empty string")}
	}
	return nil
}

func checkLLMSText(entry map[string]any, where string, _ *Index) []*Issue {
	if !isOptionalString(entry["llmstext"]) {
		return []*Issue{failure(where+".llmstext", "must be a string if present")}
	}
	return nil
}

// checkLinkList validates an optional array of http(s) URLs.
func checkLinkList(field string) entryCheck {
	return func(entry map[string]any, where string, _ *Index) []*Issue {
		if !present(entry, field) {
			return nil
		}
		urls, ok := asArray(entry[field])
		if !ok {
			return []*Issue{failure(where+"."+field, "must be an array if present")}
		}
		var issues []*Issue
		for k, link := range urls {
			if !isHTTPURL(link) {
				issues = append(issues, failure(fmt.Sprintf("%s.%s[%d]", where, field, k), "must be a valid http(s) URL"))
			}
		}
		return issues
	}
}

// checkDiscoverable requires a website or at least one repo or package link.
func checkDiscoverable(entry map[string]any, where string, _ *Index) []*Issue {
	if isNonEmptyString(entry["website"]) || nonEmptyArray(entry["repos"]) || nonEmptyArray(entry["packages"]) {
		return nil
	}
	return []*Issue{failure(where, "must include at least one of website, repos, or packages")}
}

func checkTags(entry map[string]any, where string, idx *Index) []*Issue {
	tags, ok := asArray(entry["tags"])
	if !ok || len(tags) == 0 {
		return []*Issue{failure(where+".tags", "must be a non-empty array")}
	}

	var issues []*Issue
	for t, tag := range tags {
		if !isNonEmptyString(tag) {
			issues = append(issues, failure(fmt.Sprintf("%s.tags[%d]", where, t), "must be a non-empty string"))
			continue
		}
		if !idx.HasTag(tag.(string)) {
			issues = append(issues, failure(where+".tags", fmt.Sprintf("contains unknown tag %q (not in taxonomy)", tag)))
		}
	}
	return issues
}

func checkSubcategory(entry map[string]any, where string, idx *Index) []*Issue {
	if !isNonEmptyString(entry["subcategory_id"]) {
		return []*Issue{failure(where+".subcategory_id", "must be a non-empty string")}
	}
	id := entry["subcategory_id"].(string)
	if _, ok := idx.ParentOf(id); !ok {
		return []*Issue{failure(where+".subcategory_id", fmt.Sprintf("%q does not match any taxonomy subcategory id", id))}
	}
	return nil
}

// checkCategory validates the optional legacy category field. When the
// entry's subcategory resolves, category must name that subcategory's parent.
func checkCategory(entry map[string]any, where string, idx *Index) []*Issue {
	if !present(entry, "category") {
		return nil
	}
	if !isNonEmptyString(entry["category"]) {
		return []*Issue{failure(where+".category", "must be a non-empty string if present")}
	}
	category := entry["category"].(string)
	if !idx.HasCategory(category) {
		return []*Issue{failure(where+".category", fmt.Sprintf("%q does not match any taxonomy category id/name", category))}
	}

	if !isNonEmptyString(entry["subcategory_id"]) {
		return nil
	}
	subID := entry["subcategory_id"].(string)
	parent, ok := idx.ParentOf(subID)
	if !ok || category == parent.ID || category == parent.Name {
		return nil
	}
	return []*Issue{failure(where+".category", fmt.Sprintf(
		"%q conflicts with inferred parent %q (%q) for subcategory_id %q",
		category, parent.ID, parent.Name, subID))}
}
