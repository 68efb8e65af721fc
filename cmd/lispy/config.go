package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

type Config struct {
	Prompt      string    `mapstructure:"prompt"`
	Banner      bool      `mapstructure:"banner"`
	HistoryFile string    `mapstructure:"history_file"`
	Log         LogConfig `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("prompt", "lispy> ")
	v.SetDefault("banner", true)
	v.SetDefault("history_file", "")
	v.SetDefault("log.level", "WARN")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_age", 30)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.compress", false)
}

// LoadConfig reads path, or $HOME/.lispy.yaml when path is empty. A missing
// default file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".lispy")
		v.AddConfigPath("$HOME")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return &cfg, nil
}
