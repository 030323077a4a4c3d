// Package timeouts provides centralized timeout values for the HTTP server.
//
// The greeting handler does no I/O per request, so these bound only the
// connection-level work done by net/http and the graceful shutdown drain.
//
// Timeouts can be configured at startup using Configure(). If not configured,
// the defaults are used.
package timeouts

import (
	"sync"
	"time"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultReadHeader = 5 * time.Second
	DefaultRead       = 10 * time.Second
	DefaultWrite      = 10 * time.Second
	DefaultIdle       = 60 * time.Second
	DefaultShutdown   = 10 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var (
	readHeader = DefaultReadHeader
	read       = DefaultRead
	write      = DefaultWrite
	idle       = DefaultIdle
	shutdown   = DefaultShutdown
)

// ReadHeader returns http.Server.ReadHeaderTimeout.
func ReadHeader() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return readHeader
}

// Read returns http.Server.ReadTimeout.
func Read() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return read
}

// Write returns http.Server.WriteTimeout.
func Write() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return write
}

// Idle returns http.Server.IdleTimeout.
func Idle() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return idle
}

// Shutdown returns how long in-flight requests get to finish after a stop signal.
func Shutdown() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return shutdown
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	ReadHeader time.Duration
	Read       time.Duration
	Write      time.Duration
	Idle       time.Duration
	Shutdown   time.Duration
}

// Configure sets custom timeout values. Zero values in the config are ignored,
// keeping the current (or default) values. Call it before the server is built.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.ReadHeader > 0 {
		readHeader = cfg.ReadHeader
	}
	if cfg.Read > 0 {
		read = cfg.Read
	}
	if cfg.Write > 0 {
		write = cfg.Write
	}
	if cfg.Idle > 0 {
		idle = cfg.Idle
	}
	if cfg.Shutdown > 0 {
		shutdown = cfg.Shutdown
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	readHeader = DefaultReadHeader
	read = DefaultRead
	write = DefaultWrite
	idle = DefaultIdle
	shutdown = DefaultShutdown
}
