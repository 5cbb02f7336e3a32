package config

import "github.com/spf13/viper"

type Config struct {
	DBPath    string `mapstructure:"PACING_DB_PATH"`
	OutputDir string `mapstructure:"PACING_OUTPUT_DIR"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("PACING_DB_PATH", "pacing_data.db")
	viper.SetDefault("PACING_OUTPUT_DIR", "exports")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
