package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"PORT"`
	CurrentUserID string `mapstructure:"CURRENT_USER_ID"`
	SeedDemoData  bool   `mapstructure:"SEED_DEMO_DATA"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
}

func Load() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file is fine; env vars and defaults apply.
	}

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("CURRENT_USER_ID", "1")
	viper.SetDefault("SEED_DEMO_DATA", true)
	viper.SetDefault("LOG_LEVEL", "info")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
