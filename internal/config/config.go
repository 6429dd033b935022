/**
 * @description
 * This package handles configuration management for the dashboard backend.
 * It uses the Viper library to read configuration from environment variables
 * (with an optional .env file), providing a centralized way to manage
 * application settings.
 *
 * @dependencies
 * - github.com/spf13/viper: A popular library for Go application configuration.
 */

package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingCredentials signals an unusable credential configuration. This
// is fatal at startup; the service never runs without a signing credential.
var ErrMissingCredentials = errors.New("missing required environment variables: API_KEY and API_SECRET")

// Config holds all the configuration variables for the dashboard backend.
// These values are loaded once at startup and are read-only afterwards.
type Config struct {
	ServerPort     string `mapstructure:"SERVER_PORT"`
	Environment    string `mapstructure:"APP_ENV"`
	YayaAPIBaseURL string `mapstructure:"YAYA_API_BASE"`
	APIKey         string `mapstructure:"API_KEY"`
	APISecret      string `mapstructure:"API_SECRET"`
	FrontendURL    string `mapstructure:"FRONTEND_URL"`
}

// LoadConfig reads configuration from environment variables from the given
// path. It uses Viper to automatically bind environment variables to the
// Config struct.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("YAYA_API_BASE", "https://sandbox.yayawallet.com/api/en")
	viper.SetDefault("FRONTEND_URL", "http://localhost:5173")

	// Bind environment variables explicitly to ensure they appear in Unmarshal.
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("APP_ENV")
	_ = viper.BindEnv("YAYA_API_BASE")
	_ = viper.BindEnv("API_KEY")
	_ = viper.BindEnv("API_SECRET")
	_ = viper.BindEnv("FRONTEND_URL")

	// Attempt to read the optional .env file.
	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("level=warn component=config msg=\"failed to read config file; using environment values\" err=%v", err)
		}
		err = nil
	}

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	// PORT takes precedence when set, matching typical PaaS conventions.
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		config.ServerPort = port
	}
	config.APIKey = strings.TrimSpace(config.APIKey)
	config.APISecret = strings.TrimSpace(config.APISecret)

	return
}

// Validate checks the invariants that must hold for the process to start.
func (c Config) Validate() error {
	if !c.APIConfigured() {
		return ErrMissingCredentials
	}
	return nil
}

// APIConfigured reports whether a signing credential is present.
func (c Config) APIConfigured() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// MaskedAPIKey returns a display-safe prefix of the API key for diagnostics.
func (c Config) MaskedAPIKey() string {
	if c.APIKey == "" {
		return "Not configured"
	}
	if len(c.APIKey) <= 10 {
		return c.APIKey[:1] + "..."
	}
	return c.APIKey[:10] + "..."
}
