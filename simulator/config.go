package simulator

import "os"

// Config is a configuration for the mock server application
type Config struct {
	HTTPAddr string
	// ApprovedPANPrefix is the PAN prefix the issuer decision approves.
	ApprovedPANPrefix string
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:          "127.0.0.1:3000",
		ApprovedPANPrefix: DefaultApprovedPANPrefix,
	}
}

// ConfigFromEnv builds a Config from the environment, falling back to
// the defaults.
func ConfigFromEnv() *Config {
	return &Config{
		HTTPAddr:          getenv("HTTP_ADDR", "127.0.0.1:3000"),
		ApprovedPANPrefix: getenv("APPROVED_PAN_PREFIX", DefaultApprovedPANPrefix),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
