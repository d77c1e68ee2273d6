package config

import "os"

// Config holds the runtime settings for the register.
type Config struct {
	HTTPAddr string
	DataDir  string
}

// Load reads configuration from the environment, falling back to
// defaults suitable for a single-till local install.
func Load() Config {
	return Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8081"),
		DataDir:  getenv("DATA_DIR", "data"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
