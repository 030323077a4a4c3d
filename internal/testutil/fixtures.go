package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dalemusser/hellocountry/internal/app/store/greetings"
	"github.com/dalemusser/hellocountry/internal/app/system/countrycode"
)

// SampleGreetings is the two-entry table used throughout the tests.
func SampleGreetings() map[string]string {
	return map[string]string{
		"EN": "Hello!",
		"FR": "Bonjour!",
	}
}

// NewTable builds a greetings table or fails the test.
func NewTable(t *testing.T, entries map[string]string) *greetings.Table {
	t.Helper()
	table, err := greetings.NewTable(entries)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return table
}

// WriteGreetingsFile writes entries as a greetings data file in a temp dir
// and returns its path.
func WriteGreetingsFile(t *testing.T, entries map[string]string) string {
	t.Helper()
	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal greetings: %v", err)
	}
	path := filepath.Join(t.TempDir(), "greetings.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write greetings file: %v", err)
	}
	return path
}

// FixedCountry returns a resolver that sees COUNTRY_CODE=raw.
func FixedCountry(raw string) *countrycode.Resolver {
	return countrycode.NewResolver(func(key string) (string, bool) {
		if key == countrycode.EnvKey {
			return raw, true
		}
		return "", false
	})
}

// UnsetCountry returns a resolver that sees no COUNTRY_CODE at all.
func UnsetCountry() *countrycode.Resolver {
	return countrycode.NewResolver(func(string) (string, bool) { return "", false })
}
