// Package config provides configuration management for wikiart-palette.
//
// This package handles:
//   - Loading and saving settings from JSON or TOML files
//   - Default configuration values
//   - Conversion of the free-text language and sort mode settings
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Writes into the current directory
//	// Basic color order, English titles
//	// One fetch at a time, 60s request timeout
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.OutputPath = "/custom/path"
//	err := settings.Save("/path/to/config.json")
package config
