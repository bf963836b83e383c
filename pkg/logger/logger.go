package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NOOPLogger discards everything. Handy as a default and in tests.
var NOOPLogger = zap.NewNop().Sugar()

// New builds a JSON production logger, or a colored console logger when
// appEnv is "local".
func New(appEnv string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if appEnv == "local" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar().With("service", "movie-catalog"), nil
}
