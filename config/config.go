package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port      string `envconfig:"PORT" default:"3000"`
	JWTSecret string `envconfig:"JWT_SECRET" default:"dev_secret_change_me"`
	DataDir   string `envconfig:"DATA_DIR" default:"data"`
	GinMode   string `envconfig:"GIN_MODE" default:"debug"`
}

// Load reads a .env file when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
