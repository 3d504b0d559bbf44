package artifact

// Config holds configuration for the local artifact.
type Config struct {
	// Path is where the build writes the artifact.
	Path string `mapstructure:"path" default:"index.json"`
	// Format is the artifact encoding (json, module).
	Format string `mapstructure:"format" default:"json"`
}
