package geocoder_di

import (
	"net/http"
	"time"

	config_di "github.com/geoglue/mapsearch/pkg/di/config"
	"github.com/geoglue/mapsearch/pkg/geocoder"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// New builds the geocoding client from viper settings. The config dependency
// guarantees viper has been wired before the settings are read.
func New(_ *config_di.Config, log *zap.Logger) (*geocoder.Client, error) {
	viper.SetDefault("GEOCODER_BASE_URL", geocoder.DefaultBaseURL)
	viper.SetDefault("GEOCODER_LIMIT", geocoder.DefaultLimit)
	viper.SetDefault("GEOCODER_TIMEOUT", "10s")

	accessToken := viper.GetString("MAPBOX_ACCESS_TOKEN")
	if accessToken == "" {
		// An empty token is not fatal here; the remote API rejects it on the
		// first call.
		log.Warn("MAPBOX_ACCESS_TOKEN is not set, geocoding requests will fail")
	}

	timeout := viper.GetDuration("GEOCODER_TIMEOUT")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := geocoder.NewClient(geocoder.Config{
		AccessToken: accessToken,
		BaseURL:     viper.GetString("GEOCODER_BASE_URL"),
		Limit:       viper.GetInt("GEOCODER_LIMIT"),
		HTTPClient:  &http.Client{Timeout: timeout},
	}, log)

	return client, nil
}
