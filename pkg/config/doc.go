// Package config provides configuration management for windwords.
//
// Configuration is loaded from an optional YAML file and overridden by
// environment variables. The source of every attribute is tracked so the
// "configuration show" command can report where a value came from.
//
// # Configuration Sources
//
//   - Environment variables (primary)
//   - $WINDWORDS_CONFIG_PATH/windwords.yml (optional)
//
// # Key Environment Variables
//
//   - MONGO_USERNAME, MONGO_PASSWORD, MONGO_CLUSTER: database credentials
//   - GOOGLE_MAPS_API_KEY: Places and Geocoding API key
//   - WINDWORDS_DATABASE: database name (default windwords_db)
//   - WINDWORDS_POPULATE_WEEKS: trailing window for populate runs
//   - WINDWORDS_LOG_LEVEL: logging verbosity (debug, info, warn, error)
package config
