package config

import (
	"errors"
	"os"
	"regexp"

	"github.com/pelletier/go-toml"
)

const DefaultListenAddress = "0.0.0.0:8545"

const (
	// DefaultNearTermDays is the near-term horizon used when a curve
	// request doesn't carry one
	DefaultNearTermDays = 30

	// DefaultNextTermDays is the next-term horizon used when a curve
	// request doesn't carry one
	DefaultNextTermDays = 60
)

var (
	ErrInvalidListenAddress = errors.New("invalid listen address")
	ErrInvalidTermDays      = errors.New("invalid term days")
)

var listenAddressRegex = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}:\d+$`)

// Config defines the base-level server configuration
type Config struct {
	// The associated CORS config, if any
	CORSConfig *CORS `toml:"cors_config"`

	// The address at which the server will be served.
	// Format should be: <IP>:<PORT>
	ListenAddress string `toml:"listen_address"`

	// The default near-term horizon, in days
	NearTermDays int `toml:"near_term_days"`

	// The default next-term horizon, in days
	NextTermDays int `toml:"next_term_days"`
}

// DefaultConfig returns the default server configuration
func DefaultConfig() *Config {
	return &Config{
		ListenAddress: DefaultListenAddress,
		CORSConfig:    DefaultCORSConfig(),
		NearTermDays:  DefaultNearTermDays,
		NextTermDays:  DefaultNextTermDays,
	}
}

// ValidateConfig validates the server configuration
func ValidateConfig(config *Config) error {
	// Validate the listen address
	if !listenAddressRegex.MatchString(config.ListenAddress) {
		return ErrInvalidListenAddress
	}

	// Validate the term horizons
	if config.NearTermDays <= 0 || config.NextTermDays <= 0 {
		return ErrInvalidTermDays
	}

	return nil
}

// Read reads the configuration from the given path.
// Keys absent from the file keep their default values
func Read(path string) (*Config, error) {
	// Read the config file
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse it over the defaults
	cfg := DefaultConfig()

	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
