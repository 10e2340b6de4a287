// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config holds the viewer's settings. File paths left empty fall back to
// the game directory registry's XDG locations.
type Config struct {
	DataDir         string `mapstructure:"data_dir"`
	HelpFile        string `mapstructure:"help_file"`
	KeybindingsFile string `mapstructure:"keybindings_file"`
	HintsFile       string `mapstructure:"hints_file"`
	Language        string `mapstructure:"language"`
	Watch           bool   `mapstructure:"watch"`
	Debug           bool   `mapstructure:"debug"`
}

var defaultConfig = Config{
	Language: "",
	Watch:    false,
	Debug:    false,
}

// LoadConfig reads the viewer's config.yaml plus FIELDGUIDE_* environment
// overrides. A missing config file is not an error.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	viper.AddConfigPath(filepath.Join(configHome, "fieldguide"))
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("FIELDGUIDE")
	viper.AutomaticEnv()

	viper.SetDefault("data_dir", "")
	viper.SetDefault("help_file", "")
	viper.SetDefault("keybindings_file", "")
	viper.SetDefault("hints_file", "")
	viper.SetDefault("language", defaultConfig.Language)
	viper.SetDefault("watch", defaultConfig.Watch)
	viper.SetDefault("debug", defaultConfig.Debug)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}
