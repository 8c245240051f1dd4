package i18n

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every *ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("i18n: configuration error")

var (
	// ErrLookupKeyMissing is returned when Translate is called with an empty key.
	ErrLookupKeyMissing = errors.New("lookup key missing")
	// ErrNoPlaceholderData is returned when a template has placeholders but no options were given.
	ErrNoPlaceholderData = errors.New("cannot replace placeholders in string if no option data provided")
	// ErrPlaceholderDataMissing is returned when a named placeholder has no value.
	ErrPlaceholderDataMissing = errors.New("no data found to replace placeholder")
	// ErrPluralOtherRequired is returned when neither the preferred nor the other form exists.
	ErrPluralOtherRequired = errors.New("plural form \"other\" is required for this locale")
	// ErrUnsupportedMessage is returned when a catalog value has an unusable shape.
	ErrUnsupportedMessage = errors.New("unsupported message payload")
)

// ConfigurationError reports a caller configuration problem: a bad lookup key,
// a malformed catalog for the active locale or missing interpolation data.
type ConfigurationError struct {
	Op     string
	Key    string
	Locale string
	Detail string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := "i18n: "
	if e.Op != "" {
		msg += e.Op + ": "
	}
	msg += e.Err.Error()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Key != "" {
		msg += fmt.Sprintf(" [key=%q", e.Key)
		if e.Locale != "" {
			msg += fmt.Sprintf(" locale=%q", e.Locale)
		}
		msg += "]"
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrConfiguration) match any configuration error.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configError(op, key, locale string, err error) *ConfigurationError {
	return &ConfigurationError{Op: op, Key: key, Locale: locale, Err: err}
}
