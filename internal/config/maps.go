package config

import "os"

// EnvMapsAPIKey supplies the Google Maps JavaScript API key.
const EnvMapsAPIKey = "GOOGLE_MAPS_API_KEY"

// MapsConfig holds map page settings. An empty APIKey is permitted;
// the map page renders with an empty key and the browser reports the failure.
type MapsConfig struct {
	APIKey string `toml:"api_key"`
}

// Finalize loads environment overrides.
func (c *MapsConfig) Finalize() error {
	if v := os.Getenv(EnvMapsAPIKey); v != "" {
		c.APIKey = v
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *MapsConfig) Merge(overlay *MapsConfig) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
}
