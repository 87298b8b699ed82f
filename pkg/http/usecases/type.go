package usecases

import (
	"context"

	"github.com/geoglue/mapsearch/pkg/geocoder"
)

// Geocoder is the upstream geocoding API the service proxies to.
type Geocoder interface {
	Forward(ctx context.Context, query string) ([]geocoder.Feature, error)
	Reverse(ctx context.Context, lon, lat float64) ([]geocoder.Feature, error)
}
