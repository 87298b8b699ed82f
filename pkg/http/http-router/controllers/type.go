package controllers

import (
	"context"

	"github.com/geoglue/mapsearch/pkg/geocoder"
)

type GeocodingService interface {
	Suggest(ctx context.Context, query string) ([]geocoder.Feature, error)
	Reverse(ctx context.Context, lon, lat float64) ([]geocoder.Feature, error)
}

type envelope map[string]interface{}
