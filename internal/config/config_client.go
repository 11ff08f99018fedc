package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ClientConfig is the CLI client's configuration, assembled from the same
// environment variables and JSON file as the server but without parsing the
// server's command-line flags (the CLI owns its own flags).
type ClientConfig struct {
	Adapter Adapter
	App     App
}

// GetClientConfig builds and validates the CLI configuration from
// environment variables and the optional JSON file.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		App:     cfg.App,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	setIfEmpty(&cfg.Adapter.HTTPAddress, DefaultAdapterAddress)
	setIfZero(&cfg.Adapter.RequestTimeout, DefaultAdapterTimeout)

	if cfg.Adapter.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.Adapter.TokenFile = filepath.Join(home, DefaultTokenFileName)
	}
}
