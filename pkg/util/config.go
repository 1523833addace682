package util

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ReadConfig loads config.yaml from dir (default ./data/) into the global viper instance.
// A missing file is not an error: the defaults set by SetDefaults stay in effect.
func ReadConfig(dir string) error {
	SetDefaults()
	if dir == "" {
		dir = "./data/"
	}
	viper.SetConfigName("config")
	viper.AddConfigPath(dir)
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

func SetDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "120s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")
	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("RATE_LIMIT_MAX_CLIENTS", 10000)
	viper.SetDefault("TRUSTED_PROXIES", []string{})
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("SCENARIO_FILE", "./data/scenario.yaml")
	viper.SetDefault("RESULT_FILE", "./data/results.txt")
	viper.SetDefault("DEFAULT_ALGORITHM", "astar")
	viper.SetDefault("DEFAULT_HEURISTIC", "euclidean")
	viper.SetDefault("DEFAULT_WEIGHT", 1.0)
	viper.SetDefault("MAX_NODES", 200000)
	viper.SetDefault("MAX_BOUND_ESCALATIONS", 10000)
	viper.SetDefault("SWEEP_WORKERS", 4)
	viper.SetDefault("RESULT_CACHE_SIZE", 1024)
}
