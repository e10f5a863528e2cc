package configslog

import (
	"os"

	"go.uber.org/zap"
)

// Log and SLog are the shared application loggers. They default to no-op
// loggers so packages can log before InitLogger runs (tests, tooling).
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger builds the global loggers based on ENVIRONMENT.
// Production gets JSON output, everything else gets the development console encoder.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("ENVIRONMENT") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		panic("logger could not be initialized: " + err.Error())
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered log entries. Deferred in main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
