// internal/app/bootstrap/hooks.go
package bootstrap

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// AppHooks are the lifecycle steps Run executes, in field order.
type AppHooks struct {
	Name           string
	LoadConfig     func() (AppConfig, error)
	NewLogger      func(AppConfig) (*zap.Logger, error)
	ValidateConfig func(AppConfig, *zap.Logger) error
	Startup        func(context.Context, AppConfig, *zap.Logger) (Deps, error)
	BuildHandler   func(AppConfig, Deps, *zap.Logger) (http.Handler, error)
	Shutdown       func(context.Context, AppConfig, Deps, *zap.Logger) error
}

// Hooks wires the service into Run.
var Hooks = AppHooks{
	Name:           "hellocountry",
	LoadConfig:     LoadConfig,
	NewLogger:      NewLogger,
	ValidateConfig: ValidateConfig,
	Startup:        Startup,
	BuildHandler:   BuildHandler,
	Shutdown:       Shutdown,
}
