package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration, loaded once at startup and passed
// by injection into the components that need it. Request handlers never read
// the environment directly.
type Config struct {
	ServerPort         string
	JWTSecret          string
	JWTExpirationHours int64
	LogMode            string
	LogLevel           string
	DB                 *DBConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, err
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	// Tokens live for one hour unless overridden.
	jwtExpHours := int64(1)
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS %q", v)
		}
		jwtExpHours = parsed
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "production"
	}
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		ServerPort:         serverPort,
		JWTSecret:          jwtSecret,
		JWTExpirationHours: jwtExpHours,
		LogMode:            logMode,
		LogLevel:           logLevel,
		DB:                 dbCfg,
	}, nil
}
