// Package logger provides structured logging for the portal.
//
// It wraps Uber's zap logger behind a global instance configured from
// the LOG_LEVEL setting. Plaintext credentials must never be passed to
// it.
//
//	logger.InitLogger("debug") // Options: debug, info, warn, error
//
//	logger.Log.Info("identity created",
//	    zap.String("identity_id", id.String()),
//	    zap.String("role", string(role)),
//	)
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.Logger

func InitLogger(level string) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zap.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	Log, err = cfg.Build()
	if err != nil {
		panic(err)
	}
}
