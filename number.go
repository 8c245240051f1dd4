package i18n

import (
	"strconv"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberFormatter renders numbers for a locale. Supports gates its use; an
// unsupported locale falls back to the plain decimal form of the number.
type NumberFormatter interface {
	Supports(locale string) bool
	Format(locale string, value any) string
}

// CLDRNumberFormatter formats decimals with golang.org/x/text/number, using
// locale specific grouping and decimal separators.
type CLDRNumberFormatter struct{}

var _ NumberFormatter = CLDRNumberFormatter{}

// Supports reports whether locale parses as a known BCP 47 tag.
func (CLDRNumberFormatter) Supports(locale string) bool {
	_, ok := parseTag(locale)
	return ok
}

// Format renders value as a localized decimal.
func (CLDRNumberFormatter) Format(locale string, value any) string {
	tag, ok := parseTag(locale)
	if !ok {
		return formatPlainNumber(value)
	}
	printer := message.NewPrinter(tag)
	return printer.Sprintf("%v", number.Decimal(value))
}

func isNumber(value any) bool {
	_, ok := toFloat64(value)
	return ok
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func formatPlainNumber(value any) string {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
