// Package config loads CLI configuration from flags, environment
// variables, .env files, and an optional config file, in that order of
// precedence.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the resolved tool configuration.
type Config struct {
	DatasetsFile  string // Entity-list JSON payload path
	DetailsFile   string // Detail-map JSON payload path
	HistoryFile   string // Change-history JSON path, read and rewritten
	RegionsFile   string // Optional region option-list JSON path
	LanguagesFile string // Optional language option-list JSON path

	User   string // Display name recorded on proposals and approvals
	Output string // Output format: text or json

	LogLevel  string
	LogFormat string
}

// Load resolves configuration from the environment. Precedence:
// command-line flags (bound by the caller), environment variables,
// .env files, config file, defaults.
func Load() (*Config, error) {
	loadEnvFiles()

	viper.SetEnvPrefix("datatrust")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".datatrust")
	}
	// Missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()

	config := &Config{
		DatasetsFile:  viper.GetString("datasets"),
		DetailsFile:   viper.GetString("details"),
		HistoryFile:   viper.GetString("history"),
		RegionsFile:   viper.GetString("regions"),
		LanguagesFile: viper.GetString("languages"),
		User:          viper.GetString("user"),
		Output:        viper.GetString("output"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:     getEnvOrDefault("LOG_FORMAT", "auto"),
	}
	if config.Output == "" {
		config.Output = "text"
	}
	if config.User == "" {
		config.User = getEnvOrDefault("USER", "reviewer")
	}
	return config, nil
}

// loadEnvFiles loads .env files from the working directory. Existing
// environment variables win over file values.
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
