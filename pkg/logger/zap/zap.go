package zap

import (
	"time"

	"github.com/geoglue/mapsearch/pkg/logger/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production zap logger from the given configuration.
func New(cfg config.Configuration) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(zapcore.Level(cfg.Level))
	zapConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoder(
		func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format(cfg.TimeFormat))
		})

	return zapConfig.Build()
}
