package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	VenueName  string `envconfig:"CAISSE_VENUE_NAME" default:"Espace Jeux & Boutique"`
	VenuePhone string `envconfig:"CAISSE_VENUE_PHONE" default:"+225 07 49 00 00"`
	Currency   string `envconfig:"CAISSE_CURRENCY" default:"FCFA"`

	OutputDir string `envconfig:"CAISSE_OUTPUT_DIR" default:"."`

	ViewerAddr   string        `envconfig:"CAISSE_VIEWER_ADDR" default:"127.0.0.1:0"`
	ViewerLinger time.Duration `envconfig:"CAISSE_VIEWER_LINGER" default:"3s"`
	OpenBrowser  bool          `envconfig:"CAISSE_OPEN_BROWSER" default:"true"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.VenueName == "" {
		return nil, errors.New("venue name must be provided")
	}
	if cfg.Currency == "" {
		return nil, errors.New("currency label must be provided")
	}
	return &cfg, nil
}
