//go:build wireinject

//go:generate wire
package di

import (
	"github.com/geoglue/mapsearch/pkg/di/config"
	shortcontext "github.com/geoglue/mapsearch/pkg/di/context"
	geocoder_di "github.com/geoglue/mapsearch/pkg/di/geocoder"
	logger_di "github.com/geoglue/mapsearch/pkg/di/logger"
	searchHttp "github.com/geoglue/mapsearch/pkg/http"

	"github.com/google/wire"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	geocoder_di.New,
)

var serverSet = wire.NewSet(
	defaultSet,
	NewGeocodingService,
	NewSearchAPIServer,
)

func InitializeSearchServer() (*searchHttp.Server, func(), error) {

	panic(wire.Build(serverSet))
}
