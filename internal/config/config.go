package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	DBPath       string `env:"DB_PATH" envDefault:"data/steady.db"`
	SecretKey    string `env:"SECRET_KEY"`
	CookieSecure bool   `env:"COOKIE_SECURE" envDefault:"false"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`
}

func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
