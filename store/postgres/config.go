package postgres

import "github.com/kelseyhightower/envconfig"

type Config struct {
	DSN          string `envconfig:"PATIENTS_POSTGRES_DSN" default:"postgres://localhost:5432/patients?sslmode=disable"`
	MaxOpenConns int    `envconfig:"PATIENTS_POSTGRES_MAX_OPEN_CONNS" default:"10"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
