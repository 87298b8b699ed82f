package usecases

import (
	"context"

	"github.com/geoglue/mapsearch/pkg/geocoder"

	"go.uber.org/zap"
)

// GeocodingService fronts the remote geocoder for browser clients, so the
// access token never leaves the server.
type GeocodingService struct {
	log      *zap.Logger
	geocoder Geocoder
}

func New(log *zap.Logger, geocoder Geocoder) *GeocodingService {
	return &GeocodingService{
		log:      log,
		geocoder: geocoder,
	}
}

func (s *GeocodingService) Suggest(ctx context.Context, query string) ([]geocoder.Feature, error) {
	return s.geocoder.Forward(ctx, query)
}

func (s *GeocodingService) Reverse(ctx context.Context, lon, lat float64) ([]geocoder.Feature, error) {
	return s.geocoder.Reverse(ctx, lon, lat)
}
