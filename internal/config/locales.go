package config

const (
	LangEN = "en"
	LangES = "es"
)

// SupportedLanguages lists the locales shipped with the binary.
func SupportedLanguages() []string {
	return []string{LangEN, LangES}
}

func IsSupportedLanguage(lang string) bool {
	switch lang {
	case LangEN, LangES:
		return true
	default:
		return false
	}
}
