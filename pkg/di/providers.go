package di

import (
	"context"

	"github.com/geoglue/mapsearch/pkg/geocoder"
	searchHttp "github.com/geoglue/mapsearch/pkg/http"
	"github.com/geoglue/mapsearch/pkg/http/http-router/controllers"
	"github.com/geoglue/mapsearch/pkg/http/usecases"

	"go.uber.org/zap"
)

func NewGeocodingService(log *zap.Logger, client *geocoder.Client) controllers.GeocodingService {
	return usecases.New(log, client)
}

func NewSearchAPIServer(ctx context.Context, log *zap.Logger,
	geocodingService controllers.GeocodingService) *searchHttp.Server {
	return searchHttp.NewServer(ctx, log, geocodingService)
}
