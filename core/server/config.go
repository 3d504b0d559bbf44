package server

// Config holds configuration for the lookup HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// Backend is where the server reads the compiled table from (file, storage, database).
	Backend string `mapstructure:"backend" default:"file"`
	// CacheSeconds is how long a loaded table is served before it is read again.
	CacheSeconds int `mapstructure:"cache_seconds" default:"60"`
}

const (
	BackendFile     = "file"
	BackendStorage  = "storage"
	BackendDatabase = "database"
)

// IsValidBackend checks if the configured backend is valid.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendFile, BackendStorage, BackendDatabase:
		return true
	default:
		return false
	}
}
