// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/waffle/logging"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Runtime environments accepted in APP_ENV.
const (
	envDev  = "dev"
	envProd = "prod"
)

// appKey describes one environment setting.
type appKey struct {
	Name    string
	Default string
	Desc    string
}

// appConfigKeys defines the settings read by LoadConfig. Blank values fall
// back to Default.
var appConfigKeys = []appKey{
	{Name: "PORT", Default: "3000", Desc: "TCP port the HTTP listener binds to"},
	{Name: "GREETINGS_PATH", Default: "", Desc: "Greetings data file; blank serves the table compiled into the binary"},
	{Name: "APP_ENV", Default: envProd, Desc: "Runtime environment: 'dev' or 'prod'"},
	{Name: "LOG_LEVEL", Default: "info", Desc: "Log level: debug, info, warn, error"},
	{Name: "SHUTDOWN_TIMEOUT", Default: "10s", Desc: "Graceful shutdown budget (e.g., 10s, 1m)"},
}

// envFileNames are loaded in order; earlier files win, and variables already
// present in the process environment win over both.
var envFileNames = []string{".env.local", ".env"}

// appValues is the resolved string value of every key in appConfigKeys.
type appValues map[string]string

func readAppValues(lookup func(string) (string, bool)) appValues {
	vals := make(appValues, len(appConfigKeys))
	for _, k := range appConfigKeys {
		v, ok := lookup(k.Name)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			v = k.Default
		}
		vals[k.Name] = v
	}
	return vals
}

func (v appValues) String(name string) string {
	return v[name]
}

func (v appValues) Int(name string) (int, error) {
	n, err := strconv.Atoi(v[name])
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, name, v[name])
	}
	return n, nil
}

func (v appValues) Duration(name string) (time.Duration, error) {
	d, err := time.ParseDuration(v[name])
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a duration", ErrInvalidConfig, name, v[name])
	}
	return d, nil
}

// LoadConfig loads .env files from the working directory and then reads the
// process environment.
//
// It runs before the logger exists because the logger's own settings come
// from here.
func LoadConfig() (AppConfig, error) {
	if err := loadEnvFiles("."); err != nil {
		return AppConfig{}, err
	}
	return loadConfigFrom(os.LookupEnv)
}

// loadEnvFiles applies any .env files found in dir to the process environment.
func loadEnvFiles(dir string) error {
	var files []string
	for _, name := range envFileNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		files = append(files, candidate)
	}
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("%w: load env files: %v", ErrInvalidConfig, err)
	}
	return nil
}

func loadConfigFrom(lookup func(string) (string, bool)) (AppConfig, error) {
	vals := readAppValues(lookup)

	port, err := vals.Int("PORT")
	if err != nil {
		return AppConfig{}, err
	}
	shutdown, err := vals.Duration("SHUTDOWN_TIMEOUT")
	if err != nil {
		return AppConfig{}, err
	}

	return AppConfig{
		Port:            port,
		GreetingsPath:   vals.String("GREETINGS_PATH"),
		Env:             strings.ToLower(vals.String("APP_ENV")),
		LogLevel:        strings.ToLower(vals.String("LOG_LEVEL")),
		ShutdownTimeout: shutdown,
	}, nil
}

// ValidateConfig rejects configurations the service cannot start with.
func ValidateConfig(cfg AppConfig, logger *zap.Logger) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("%w: PORT=%d out of range 1-65535", ErrInvalidConfig, cfg.Port)
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: SHUTDOWN_TIMEOUT must be positive", ErrInvalidConfig)
	}

	logger.Info("configuration loaded",
		zap.String("addr", cfg.Addr()),
		zap.String("greetings", greetingsSource(cfg.GreetingsPath)),
		zap.String("env", cfg.Env),
		zap.String("log_level", cfg.LogLevel),
		zap.Duration("shutdown_timeout", cfg.ShutdownTimeout))
	return nil
}

// NewLogger builds the app logger from the loaded configuration.
//
// logging.BuildLogger falls back to info on an unknown level, so APP_ENV and
// LOG_LEVEL are checked here first and rejected outright.
func NewLogger(cfg AppConfig) (*zap.Logger, error) {
	if cfg.Env != envDev && cfg.Env != envProd {
		return nil, fmt.Errorf("%w: APP_ENV=%q must be %q or %q", ErrInvalidConfig, cfg.Env, envDev, envProd)
	}
	if !logging.IsValidLogLevel(cfg.LogLevel) {
		return nil, fmt.Errorf("%w: LOG_LEVEL=%q, valid levels are %s",
			ErrInvalidConfig, cfg.LogLevel, strings.Join(logging.ValidLogLevels, ", "))
	}

	logger, err := logging.BuildLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
