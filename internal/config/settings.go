package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/handiism/wikiart-palette/internal/model"
	"github.com/handiism/wikiart-palette/internal/palette"
)

// DefaultBaseURL is the WikiArt site root that catalog and artwork hrefs
// are resolved against.
const DefaultBaseURL = "https://www.wikiart.org"

// Settings holds all configuration options.
type Settings struct {
	// Run settings
	ArtistName     string `json:"artist_name" toml:"artist_name"`
	OutputPath     string `json:"output_path" toml:"output_path"`
	DownloadImages bool   `json:"download_images" toml:"download_images"`
	SortMode       string `json:"sort_mode" toml:"sort_mode"` // basic, shade, luminance
	Language       string `json:"language" toml:"language"`   // english, français

	// Network settings
	BaseURL              string  `json:"base_url" toml:"base_url"`
	UserAgent            string  `json:"user_agent" toml:"user_agent"`
	RequestTimeout       float64 `json:"request_timeout" toml:"request_timeout"` // seconds, 0 disables
	MaxConcurrentFetches int     `json:"max_concurrent_fetches" toml:"max_concurrent_fetches"`

	// Downloaded image settings
	ConvertImagesToJPG bool `json:"convert_images_to_jpg" toml:"convert_images_to_jpg"`
	ResizeImages       bool `json:"resize_images" toml:"resize_images"`
	ImageMaxSize       int  `json:"image_max_size" toml:"image_max_size"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		OutputPath:     ".",
		DownloadImages: false,
		SortMode:       palette.ModeBasic.String(),
		Language:       model.English.String(),

		BaseURL:              DefaultBaseURL,
		UserAgent:            "wikiart-palette",
		RequestTimeout:       60,
		MaxConcurrentFetches: 1,

		ConvertImagesToJPG: false,
		ResizeImages:       false,
		ImageMaxSize:       1000,
	}
}

// Load reads settings from a JSON or TOML file, chosen by extension.
// A missing file yields the default settings.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isTOML(path) {
		if err := toml.Unmarshal(data, settings); err != nil {
			return nil, err
		}
		return settings, nil
	}

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON or TOML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return err
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}

// ToLanguage converts the language setting, defaulting to English.
func (s *Settings) ToLanguage() model.Language {
	return model.ParseLanguage(s.Language)
}

// ToSortMode converts the sort mode setting, defaulting to basic.
func (s *Settings) ToSortMode() palette.SortMode {
	return palette.ParseSortMode(s.SortMode)
}

// Timeout returns the request timeout as a duration.
func (s *Settings) Timeout() time.Duration {
	if s.RequestTimeout <= 0 {
		return 0
	}
	return time.Duration(s.RequestTimeout * float64(time.Second))
}

// Workers returns the number of concurrent fetches, at least 1.
func (s *Settings) Workers() int {
	return max(s.MaxConcurrentFetches, 1)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
