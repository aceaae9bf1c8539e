// Package config loads runtime configuration from the environment. A .env
// file in the working directory is read first so local setups do not need
// exported variables.
package config

import (
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds everything the server needs to run.
type Config struct {
	Addr      string        `env:"SERVER_ADDR,default=:8080" description:"address the HTTP server listens on"`
	DBPath    string        `env:"DB_PATH,default=data/badger" description:"directory of the badger database"`
	JWTSecret string        `env:"JWT_SECRET,required" description:"HMAC secret used to sign access tokens"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,default=24h" description:"lifetime of issued access tokens"`
	LogLevel  string        `env:"LOG_LEVEL,default=info" description:"logrus level: debug, info, warn, error"`
}

// Load reads the optional .env file and decodes the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
