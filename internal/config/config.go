package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
)

// Config holds all runtime configuration values.  The room registry is
// in-memory, so the HTTP port is the only required setting; everything
// else is optional infrastructure with sensible defaults.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on
}

// Load reads configuration values from environment variables and
// returns a Config.  A missing APP_PORT causes the program to exit
// with a fatal log message.
func Load() Config {
	return Config{
		Env:  getenv("APP_ENV", "dev"),
		Port: must("APP_PORT"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
