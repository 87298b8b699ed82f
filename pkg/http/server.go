package http

import (
	"context"

	http_router "github.com/geoglue/mapsearch/pkg/http/http-router"
	"github.com/geoglue/mapsearch/pkg/http/http-router/controllers"
	http_server "github.com/geoglue/mapsearch/pkg/http/server"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	ctx              context.Context
	log              *zap.Logger
	geocodingService controllers.GeocodingService
}

func NewServer(ctx context.Context, log *zap.Logger,
	geocodingService controllers.GeocodingService) *Server {
	return &Server{
		ctx:              ctx,
		log:              log,
		geocodingService: geocodingService,
	}
}

// Run starts the API and blocks until it stops or the server context is
// cancelled.
func (s *Server) Run() error {
	viper.SetDefault("API_PORT", 6060)

	viper.SetDefault("API_TIMEOUT", "30s")

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(s.log)

	g, gctx := errgroup.WithContext(s.ctx)

	g.Go(func() error {
		return server.Run(
			gctx, config, s.log, s.geocodingService,
		)
	})

	return g.Wait()
}
