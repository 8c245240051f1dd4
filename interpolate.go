package i18n

import (
	"regexp"
	"strings"
)

// placeholderPattern matches %{name}; the name is any run of characters that
// are neither whitespace nor a closing brace.
var placeholderPattern = regexp.MustCompile(`%\{([^\s}]+)\}`)

// HasPlaceholders reports whether template contains at least one %{name} token.
func HasPlaceholders(template string) bool {
	return strings.Contains(template, "%{") && placeholderPattern.MatchString(template)
}

// Placeholders returns the distinct placeholder names in template, in order
// of first appearance.
func Placeholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		if _, ok := seen[match[1]]; ok {
			continue
		}
		seen[match[1]] = struct{}{}
		names = append(names, match[1])
	}
	return names
}

// Interpolate substitutes every %{name} token in template with the matching
// value from opts. It fails on the first placeholder without data and never
// returns a partially substituted string. Numbers are rendered with formatter
// when it supports locale; a nil formatter renders plain decimals.
func Interpolate(template string, opts Options, locale string, formatter NumberFormatter) (string, error) {
	if formatter != nil && !formatter.Supports(locale) {
		formatter = nil
	}

	matches := placeholderPattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template, nil
	}

	var b strings.Builder
	b.Grow(len(template))

	last := 0
	for _, match := range matches {
		start, end := match[0], match[1]
		name := template[match[2]:match[3]]

		value, ok := opts[name]
		if !ok {
			err := configError("interpolate", "", locale, ErrPlaceholderDataMissing)
			err.Detail = template[start:end]
			return "", err
		}

		b.WriteString(template[last:start])
		b.WriteString(placeholderValue(value, locale, formatter))
		last = end
	}
	b.WriteString(template[last:])

	return b.String(), nil
}

func placeholderValue(value any, locale string, formatter NumberFormatter) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		// false suppresses the placeholder; true is not a renderable value either
		return ""
	}
	if !isNumber(value) {
		return ""
	}
	if formatter != nil {
		return formatter.Format(locale, value)
	}
	return formatPlainNumber(value)
}
