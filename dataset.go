package i18n

import (
	"fmt"
	"strings"
)

// DefaultDatasetNamespace is the attribute namespace components use for
// translation overrides, as in data-i18n.characters-under-limit.one.
const DefaultDatasetNamespace = "i18n"

// CatalogFromDataset builds a catalog from element attributes. Attribute
// names may carry the "data-" prefix and must start with the namespace
// followed by a dot; kebab-case segments are converted to camelCase:
//
//	data-i18n.characters-under-limit.one -> charactersUnderLimit.one
//
// Attributes outside the namespace are ignored. The result is parsed as a
// flat catalog, so plural suffixes fold into plural entries.
func CatalogFromDataset(attrs map[string]string, namespace string) (*Catalog, error) {
	if namespace == "" {
		namespace = DefaultDatasetNamespace
	}
	prefix := strings.ToLower(namespace) + "."

	raw := make(map[string]any)
	for name, value := range attrs {
		name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "data-")
		if !strings.HasPrefix(name, prefix) {
			continue
		}

		key := datasetKey(strings.TrimPrefix(name, prefix))
		if key == "" {
			return nil, fmt.Errorf("i18n: empty dataset key in namespace %q", namespace)
		}
		raw[key] = value
	}

	return ParseCatalog(raw)
}

func datasetKey(name string) string {
	segments := strings.Split(name, ".")
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		out = append(out, kebabToCamel(segment))
	}
	return strings.Join(out, ".")
}

func kebabToCamel(value string) string {
	parts := strings.Split(value, "-")
	var b strings.Builder
	b.Grow(len(value))
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 || b.Len() == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
