// Package config provides configuration management for element-attributes.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Log: Logging level and format
//   - Fetch: HTTP timeouts, user agent and size limit for the documents
//   - Sources: URLs of the SVG 1.1, SVG Tiny 1.2 and SVG 2 attribute indexes
//   - Output: Artifact path and format (json, module)
//   - Storage: S3/MinIO upload of the artifact
//   - Database: Optional MySQL/SQLite copy of the table
//   - Server: Lookup server port, API key and backend
//
// Environment variables map to nested keys with an underscore, e.g. OUTPUT_PATH
// sets output.path.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Output.Path)
package config
