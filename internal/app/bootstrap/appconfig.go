// internal/app/bootstrap/appconfig.go
package bootstrap

import (
	"net"
	"strconv"
	"time"

	"github.com/dalemusser/hellocountry/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
)

// listenHost is the interface the HTTP listener binds to. The waffle server
// listens on ":PORT", which is every interface.
const listenHost = "0.0.0.0"

// AppConfig holds service configuration.
//
// Values come from environment variables, optionally supplied through
// .env.local / .env in the working directory (loaded in LoadConfig).
//
// COUNTRY_CODE is not part of AppConfig; countrycode.Resolver reads it on
// every request.
type AppConfig struct {
	Port            int           // TCP port (PORT)
	GreetingsPath   string        // greetings data file (GREETINGS_PATH); empty means the bundled table
	Env             string        // "dev" or "prod" (APP_ENV)
	LogLevel        string        // zap level name (LOG_LEVEL)
	ShutdownTimeout time.Duration // graceful drain budget (SHUTDOWN_TIMEOUT)
}

// Addr returns the listen address, e.g. "0.0.0.0:3000".
func (c AppConfig) Addr() string {
	return net.JoinHostPort(listenHost, strconv.Itoa(c.Port))
}

// CoreConfig returns the waffle server settings for c: plain HTTP on Port,
// connection timeouts from the timeouts package.
func (c AppConfig) CoreConfig() *config.CoreConfig {
	return &config.CoreConfig{
		Env:      c.Env,
		LogLevel: c.LogLevel,
		HTTP: config.HTTPConfig{
			HTTPPort:          c.Port,
			ReadHeaderTimeout: timeouts.ReadHeader(),
			ReadTimeout:       timeouts.Read(),
			WriteTimeout:      timeouts.Write(),
			IdleTimeout:       timeouts.Idle(),
			ShutdownTimeout:   timeouts.Shutdown(),
		},
	}
}
