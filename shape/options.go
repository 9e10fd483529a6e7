package shape

import "github.com/go-text/typesetting/language"

// Option configures an HBShaper.
type Option func(*config)

// config holds configuration for HBShaper.
type config struct {
	language language.Language
}

// defaultConfig returns the default shaper configuration.
func defaultConfig() config {
	return config{
		language: language.NewLanguage("en"),
	}
}

// WithLanguage sets the BCP 47 language tag passed to the shaping
// library (e.g. "en", "ja", "ar"). Language affects language-specific
// OpenType features such as locl substitutions.
func WithLanguage(lang string) Option {
	return func(c *config) {
		c.language = language.NewLanguage(lang)
	}
}
