package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk sheet database.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the data path from a .tempo config file or the
// TEMPO_PATH environment variable, defaulting to ~/.tempo.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.tempo.db")
	viper.SetConfigName(".tempo") // .yaml is implicit
	viper.SetEnvPrefix("TEMPO")
	viper.AutomaticEnv()

	if override := os.Getenv("TEMPO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
