// internal/app/bootstrap/run.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/hellocountry/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/server"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
)

// Run executes the lifecycle in h and serves HTTP until ctx is cancelled.
//
// Any failure before the listener is up aborts startup and is returned;
// nothing is served in that case.
func Run(ctx context.Context, h AppHooks) error {
	appCfg, err := h.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := h.NewLogger(appCfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.Named(h.Name)

	undo, err := maxprocs.Set(maxprocs.Logger(logger.Sugar().Infof))
	if err != nil {
		logger.Warn("failed to set GOMAXPROCS", zap.Error(err))
	}
	defer undo()

	if err := h.ValidateConfig(appCfg, logger); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	timeouts.Configure(timeouts.Config{Shutdown: appCfg.ShutdownTimeout})

	deps, err := h.Startup(ctx, appCfg, logger)
	if err != nil {
		return fmt.Errorf("startup: %w", err)
	}

	handler, err := h.BuildHandler(appCfg, deps, logger)
	if err != nil {
		return fmt.Errorf("build handler: %w", err)
	}

	// Blocks until ctx is cancelled, then drains within SHUTDOWN_TIMEOUT.
	serveErr := server.ListenAndServeWithContext(ctx, appCfg.CoreConfig(), handler, logger)
	if serveErr != nil {
		serveErr = fmt.Errorf("serve on %s: %w", appCfg.Addr(), serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown())
	defer cancel()
	if err := h.Shutdown(shutdownCtx, appCfg, deps, logger); err != nil {
		logger.Error("shutdown hook failed", zap.Error(err))
		if serveErr == nil {
			serveErr = fmt.Errorf("shutdown: %w", err)
		}
	}
	return serveErr
}
