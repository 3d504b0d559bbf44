package fetch

// Config holds configuration for fetching specification documents.
type Config struct {
	// TimeoutSeconds bounds connection setup, TLS handshake and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"element-attributes/1.0"`
	// MaxBytes is the largest accepted document size.
	MaxBytes int64 `mapstructure:"max_bytes" default:"33554432"`
}
