// Package config loads checkatron's configuration.
//
// Values come from a .env file (godotenv) and the environment (viper), with
// defaults taken from the `default` struct tags of each section. Environment names
// are the upper-cased keys with dots replaced by underscores, e.g. GENERATE_DIALECT.
//
// Sections:
//   - Server: HTTP port and API key
//   - Storage: S3/MinIO endpoint and credentials
//   - Log: level and format
//   - Generate: default dialect, result table and output destination
//
// Command-line flags override configured values.
package config
