// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"go.uber.org/zap"
)

// Shutdown runs after the HTTP server has drained. The greetings table is
// plain memory, so there is nothing to release beyond flushing logs.
func Shutdown(ctx context.Context, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	logger.Info("shutdown complete")
	return nil
}
