package logger

import (
	"go.uber.org/zap"
)

// Log is the shared application logger. Init must be called before use;
// until then it is a no-op logger so packages can log safely in tests.
var Log = zap.NewNop()

// Init configures the logger for the given environment.
func Init(env string) error {
	var (
		l   *zap.Logger
		err error
	)

	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	Log = l
	return nil
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = Log.Sync()
}
