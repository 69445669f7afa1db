package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	ServerAddress string        `mapstructure:"SERVER_ADDRESS"`
	StoreDriver   string        `mapstructure:"STORE_DRIVER"` // "memory" or "postgres"
	PostgresConn  string        `mapstructure:"POSTGRES_CONN"`
	MigrationURL  string        `mapstructure:"MIGRATION_URL"`
	SweepInterval time.Duration `mapstructure:"SWEEP_INTERVAL"`
}

// LoadConfig loads configuration from an app.env file and the environment
func LoadConfig(path string) (cfg Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("STORE_DRIVER", "memory")
	viper.SetDefault("MIGRATION_URL", "file://migrations")
	viper.SetDefault("SWEEP_INTERVAL", time.Minute)

	if err = viper.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults and env cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}
	err = viper.Unmarshal(&cfg)
	return
}
