package catalog

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// links validates repo and package URLs. validator.Validate is safe for
// concurrent use and caches parsed tags, so one instance serves every run.
var links = validator.New()

// isNonEmptyString reports whether v is a string with non-whitespace content.
func isNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

// isOptionalString reports whether v is absent (nil) or a string.
func isOptionalString(v any) bool {
	if v == nil {
		return true
	}
	_, ok := v.(string)
	return ok
}

// isHTTPURL reports whether v is a string holding an absolute http or https
// URL with a host.
func isHTTPURL(v any) bool {
	if !isNonEmptyString(v) {
		return false
	}
	s := strings.TrimSpace(v.(string))
	return links.Var(s, "http_url") == nil
}

// asObject returns v as a decoded JSON object.
func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// asArray returns v as a decoded JSON array.
func asArray(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// present reports whether key is set to a non-null value.
func present(obj map[string]any, key string) bool {
	v, ok := obj[key]
	return ok && v != nil
}

// nonEmptyArray reports whether v is an array with at least one element.
func nonEmptyArray(v any) bool {
	a, ok := asArray(v)
	return ok && len(a) > 0
}
