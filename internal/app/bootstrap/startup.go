// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/hellocountry/internal/app/store/greetings"
	"github.com/dalemusser/hellocountry/internal/app/system/countrycode"
	"go.uber.org/zap"
)

// Startup runs one-time initialization before the HTTP handler is built.
//
// It loads the greetings table: the bundled copy, or the file named by
// GREETINGS_PATH when set. A missing or malformed file aborts startup; the
// service never serves with an empty or partial table.
func Startup(ctx context.Context, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	table, err := loadGreetings(appCfg.GreetingsPath)
	if err != nil {
		logger.Error("greetings load failed", zap.Error(err))
		return Deps{}, err
	}
	if table.Len() == 0 {
		logger.Warn("greetings table is empty; every request will return 404",
			zap.String("source", greetingsSource(appCfg.GreetingsPath)))
	}

	resolver := countrycode.FromEnv()

	logger.Info("greetings loaded",
		zap.String("source", greetingsSource(appCfg.GreetingsPath)),
		zap.Int("count", table.Len()),
		zap.Strings("codes", table.Codes()),
		zap.String("country_code", resolver.Resolve()))

	return Deps{
		Greetings: table,
		Resolver:  resolver,
	}, nil
}

func loadGreetings(path string) (*greetings.Table, error) {
	if path == "" {
		return greetings.LoadBundled()
	}
	return greetings.Load(path)
}

func greetingsSource(path string) string {
	if path == "" {
		return "bundled"
	}
	return path
}
