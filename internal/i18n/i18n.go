// Package i18n provides the localized string tables for service URL templates and user-facing messages
package i18n

import (
	"fmt"
)

const (
	// DefaultLanguage is the fallback language when no translation is available
	DefaultLanguage = "de"
	// EnglishMessages points searches at the English language editions of each service
	EnglishMessages = "en"
)

// Localizer provides translation functionality
type Localizer struct {
	language  string
	messages  map[string]string
	overrides map[string]string
}

// NewLocalizer creates a new localizer for the specified language
func NewLocalizer(language string) *Localizer {
	return &Localizer{
		language: language,
		messages: getMessages(language),
	}
}

// WithOverrides returns a copy of the localizer whose entries in overrides take precedence
// over the built-in tables. The receiver is left unchanged.
func (l *Localizer) WithOverrides(overrides map[string]string) *Localizer {
	merged := make(map[string]string, len(l.overrides)+len(overrides))
	for key, value := range l.overrides {
		merged[key] = value
	}
	for key, value := range overrides {
		merged[key] = value
	}

	return &Localizer{
		language:  l.language,
		messages:  l.messages,
		overrides: merged,
	}
}

// Language returns the language code the localizer was created for
func (l *Localizer) Language() string {
	return l.language
}

// Lookup returns the raw message for key and whether it exists in the
// overrides, the current language or the default language.
func (l *Localizer) Lookup(key string) (string, bool) {
	if message, exists := l.overrides[key]; exists {
		return message, true
	}

	if message, exists := l.messages[key]; exists {
		return message, true
	}

	if l.language != DefaultLanguage {
		if fallbackMessage, exists := getMessages(DefaultLanguage)[key]; exists {
			return fallbackMessage, true
		}
	}

	return "", false
}

// T translates a message key, with optional parameters for formatting
func (l *Localizer) T(key string, args ...interface{}) string {
	message, exists := l.Lookup(key)
	if !exists {
		// Ultimate fallback: return the key itself
		return key
	}

	if len(args) > 0 {
		return fmt.Sprintf(message, args...)
	}
	return message
}

// GetSupportedLanguages returns list of supported language codes
func GetSupportedLanguages() []string {
	return []string{DefaultLanguage, EnglishMessages}
}

// IsSupported reports whether language has its own message table
func IsSupported(language string) bool {
	for _, supported := range GetSupportedLanguages() {
		if language == supported {
			return true
		}
	}
	return false
}

// getMessages returns the message map for a given language
func getMessages(language string) map[string]string {
	switch language {
	case DefaultLanguage:
		return germanMessages
	case EnglishMessages:
		return englishMessages
	default:
		return germanMessages // Default to German
	}
}
