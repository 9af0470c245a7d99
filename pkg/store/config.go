package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config provides the base path for the recents database.
type Config interface {
	BasePath() string
}

// LoadConfig reads the .chipfield config file from the working directory or
// CHIPFIELD_CONFIG_PATH, with CHIPFIELD_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.chipfield.db")
	viper.SetConfigName(".chipfield") // .yaml is implicit
	viper.SetEnvPrefix("CHIPFIELD")
	viper.AutomaticEnv()

	if override := os.Getenv("CHIPFIELD_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
