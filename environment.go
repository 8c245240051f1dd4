package i18n

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

// Environment supplies the ambient language used as the default locale.
type Environment interface {
	Language() string
}

// LanguageFunc adapts a bare function to Environment.
type LanguageFunc func() string

// Language implements Environment for LanguageFunc
func (fn LanguageFunc) Language() string {
	if fn == nil {
		return ""
	}
	return fn()
}

// StaticLanguage is a fixed ambient language.
type StaticLanguage string

// Language implements Environment for StaticLanguage
func (s StaticLanguage) Language() string {
	return string(s)
}

type languageEnv struct {
	Locale     string `env:"I18N_LOCALE"`
	LCAll      string `env:"LC_ALL"`
	LCMessages string `env:"LC_MESSAGES"`
	Lang       string `env:"LANG"`
}

// EnvLanguage reads the ambient language from environment variables:
// I18N_LOCALE, then LC_ALL, LC_MESSAGES and LANG. POSIX values such as
// "en_GB.UTF-8" become "en-GB"; "C" and "POSIX" are ignored. Vars replaces
// the process environment when set.
type EnvLanguage struct {
	Vars map[string]string
}

// Language implements Environment for EnvLanguage
func (e EnvLanguage) Language() string {
	var vars languageEnv
	opts := env.Options{}
	if e.Vars != nil {
		opts.Environment = e.Vars
	}
	if err := env.ParseWithOptions(&vars, opts); err != nil {
		return ""
	}

	for _, candidate := range []string{vars.Locale, vars.LCAll, vars.LCMessages, vars.Lang} {
		if tag := posixLocaleToTag(candidate); tag != "" {
			return tag
		}
	}
	return ""
}

func posixLocaleToTag(value string) string {
	value = strings.TrimSpace(value)
	if idx := strings.IndexAny(value, ".@"); idx >= 0 {
		value = value[:idx]
	}
	switch value {
	case "", "C", "POSIX":
		return ""
	}
	return normalizeLocale(value)
}
