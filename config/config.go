package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoreBackendMongo    = "mongo"
	StoreBackendPostgres = "postgres"
)

type Config struct {
	HttpAddress  string `envconfig:"PATIENTS_HTTP_ADDRESS" default:":8080" required:"true"`
	StoreBackend string `envconfig:"PATIENTS_STORE_BACKEND" default:"mongo"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) LoadFromEnv() error {
	if err := envconfig.Process("", c); err != nil {
		return err
	}
	switch c.StoreBackend {
	case StoreBackendMongo, StoreBackendPostgres:
		return nil
	default:
		return fmt.Errorf("unsupported store backend %q", c.StoreBackend)
	}
}
