package interview

// Bounds on the requested number of follow-up questions. The lower
// bound also rejects zero, which has no sensible rendering.
const (
	MinFollowUps = 1
	MaxFollowUps = 10
)

// Config controls generation behavior shared by all generators.
type Config struct {
	// MaxTokens is the token budget for one LLM response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}
