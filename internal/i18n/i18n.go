// Package i18n provides the read-only display-string lookup injected
// into the controller and the TUI. The tables are fixed at startup;
// lookups never drive control flow, only user-facing text.
package i18n

// Translator resolves a string key to a localized display string.
type Translator interface {
	Tr(key string) string
}

// Language selects a translation table.
type Language string

const (
	English Language = "en"
	Chinese Language = "zh-CN"
)

// ParseLanguage resolves a configured language code, defaulting to
// English for anything unrecognized.
func ParseLanguage(code string) Language {
	switch code {
	case "zh-CN", "zh", "chinese":
		return Chinese
	default:
		return English
	}
}

// Manager is the Translator implementation backed by the static tables
// in translations.go. Missing keys fall back to English, then to the
// key itself, so a hole in a table is visible but never fatal.
type Manager struct {
	language Language
}

// NewManager creates a Manager for the given language.
func NewManager(language Language) *Manager {
	return &Manager{language: language}
}

// Language returns the active language.
func (m *Manager) Language() Language {
	return m.language
}

// Tr implements Translator.
func (m *Manager) Tr(key string) string {
	if table, ok := translations[m.language]; ok {
		if text, ok := table[key]; ok {
			return text
		}
	}
	if text, ok := translations[English][key]; ok {
		return text
	}
	return key
}
