// Package countrycode resolves the country code used to pick a greeting.
//
// The code comes from server-side configuration only (the COUNTRY_CODE
// environment variable), never from the request. It is read on every call to
// Resolve so the handler reflects the environment at resolution time.
package countrycode

import (
	"os"
	"strings"
)

const (
	// Default is used when the setting is unset or blank.
	Default = "EN"
	// EnvKey is the environment variable holding the country code.
	EnvKey = "COUNTRY_CODE"
)

// LookupFunc reads a configuration value, reporting whether it was set.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Normalize trims raw and uppercases it, falling back to Default when nothing is left.
func Normalize(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return Default
	}
	return code
}

// Resolver produces the resolved country code.
type Resolver struct {
	lookup LookupFunc
}

// NewResolver returns a Resolver reading through lookup. A nil lookup reads
// the process environment.
func NewResolver(lookup LookupFunc) *Resolver {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Resolver{lookup: lookup}
}

// FromEnv returns a Resolver backed by the process environment.
func FromEnv() *Resolver {
	return NewResolver(os.LookupEnv)
}

// Resolve returns a non-empty uppercase country code. It never fails.
func (r *Resolver) Resolve() string {
	raw, ok := r.lookup(EnvKey)
	if !ok {
		return Default
	}
	return Normalize(raw)
}
