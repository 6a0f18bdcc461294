package config

import "os"

// Environment variable names. Secret material should arrive through these
// (or the JSON overlay) rather than flags, which leak into process listings.
const (
	EnvAddr      = "PALETTES_ADDR"
	EnvDSN       = "PALETTES_DATABASE_DSN"
	EnvSecretKey = "PALETTES_JWT_SECRET"
)

// parseEnv overlays Config fields from the process environment.
// Unset variables leave the current values untouched.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(EnvAddr); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv(EnvDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(EnvSecretKey); ok {
		config.SecretKey = v
	}
}
