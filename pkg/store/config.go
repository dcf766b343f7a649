package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the two settings the app needs: where the key-value store
// lives and where the assistant service listens.
type Config interface {
	BasePath() string
	APIBaseURL() string
}

// LoadConfig resolves configuration from a .pa config file and PA_* env
// variables, with working defaults for both keys.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.pa.db")
	viper.SetDefault("api_url", "http://localhost:8000")
	viper.SetConfigName(".pa") // .yaml is implicit
	viper.SetEnvPrefix("PA")
	viper.AutomaticEnv()

	if override := os.Getenv("PA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("expanding store path: %w", err)
	}

	return &fileConfig{Path: path, APIURL: viper.GetString("api_url")}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	APIURL string `json:"api_url"`
}

func (f *fileConfig) BasePath() string   { return f.Path }
func (f *fileConfig) APIBaseURL() string { return f.APIURL }
