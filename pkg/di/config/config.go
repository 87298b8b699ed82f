package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct{}

// New wires viper to the environment and an optional config.yaml in the
// working directory. Settings like MAPBOX_ACCESS_TOKEN and API_PORT come
// from either source, environment winning.
func New() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
		// No config file is fine; the environment carries the settings.
	}

	config := &Config{}
	return config, nil
}
