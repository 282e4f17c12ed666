package telemetry

import (
	"time"

	"carenow/config"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// Init configures the Sentry SDK. An empty DSN leaves the SDK disabled; every
// later call becomes a no-op, so telemetry never gates application behavior.
func Init(cfg config.SentryConfig) error {
	if cfg.DSN == "" {
		logrus.Info("Sentry DSN not set, telemetry disabled")
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
	})
	if err != nil {
		return err
	}

	logrus.Info("Sentry telemetry initialized")
	return nil
}

// Flush drains buffered events; called on shutdown.
func Flush() {
	sentry.Flush(2 * time.Second)
}
