// Package llm provides the Gemini client used for the optional NLP résumé
// backend and for career-fit analysis.
package llm

// Config holds the model names the client tries, in order of preference.
// Model availability shifts between API versions, so each call walks the
// list until one succeeds.
type Config struct {
	Models []string
}

// DefaultConfig returns the default Gemini model preference order.
func DefaultConfig() *Config {
	return &Config{
		Models: []string{
			"gemini-2.5-flash",
			"models/gemini-2.5-pro",
			"models/gemini-2.0-flash",
		},
	}
}

// WithModels returns a copy of the config using the given model list.
func (c *Config) WithModels(models ...string) *Config {
	return &Config{Models: append([]string(nil), models...)}
}
