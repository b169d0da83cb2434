package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Backend struct {
		// Base URL of the platform REST API, e.g. https://xyz.share.zrok.io/
		BaseURL string `env:"API_URL,required"`
	}

	Auth struct {
		// File holding the admin session token between runs. Stands in for
		// the browser local storage slot the dashboard used.
		TokenFile string `env:"TOKEN_FILE" envDefault:".admin-token"`
	}

	Telegram struct {
		// When set, incoming Telegram init data is validated before it is
		// forwarded to the backend. The backend validates it again either way.
		BotToken string `env:"BOT_TOKEN" envDefault:""`
	}
}

func Load() *Config {
	// Missing .env is fine, variables may be set directly in the environment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
