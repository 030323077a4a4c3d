// Package greetings holds the country code -> greeting table served by the
// greeting feature.
//
// The table is read once at startup from a JSON document containing a flat
// object of string keys to string values: either the copy compiled into the
// binary or a file named by GREETINGS_PATH. After construction a Table is never
// mutated, so it can be shared by any number of concurrent request handlers
// without locking.
package greetings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dalemusser/hellocountry/data"
)

var (
	// ErrMissing reports that the greetings data file does not exist.
	ErrMissing = errors.New("missing greetings data file")
	// ErrMalformed reports that the file is not a flat object of strings.
	ErrMalformed = errors.New("malformed greetings data file")
)

// Table is an immutable mapping from canonical (uppercase) country code to greeting.
type Table struct {
	entries map[string]string
}

// NewTable copies entries into a new Table. Keys are trimmed and uppercased;
// an empty key or two keys that collapse to the same code are rejected.
func NewTable(entries map[string]string) (*Table, error) {
	t := &Table{entries: make(map[string]string, len(entries))}
	for raw, msg := range entries {
		code := strings.ToUpper(strings.TrimSpace(raw))
		if code == "" {
			return nil, fmt.Errorf("%w: empty country code", ErrMalformed)
		}
		if _, dup := t.entries[code]; dup {
			return nil, fmt.Errorf("%w: duplicate country code %q", ErrMalformed, code)
		}
		t.entries[code] = msg
	}
	return t, nil
}

// Load reads and parses the greetings file at path.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrMissing, displayPath(path))
		}
		return nil, fmt.Errorf("read greetings data file at %s: %w", displayPath(path), err)
	}

	t, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", displayPath(path), err)
	}
	return t, nil
}

// LoadFS reads and parses the greetings file name from fsys.
func LoadFS(fsys fs.FS, name string) (*Table, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrMissing, name)
		}
		return nil, fmt.Errorf("read greetings data file at %s: %w", name, err)
	}

	t, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

// LoadBundled parses the greetings table compiled into the binary.
func LoadBundled() (*Table, error) {
	return LoadFS(data.FS, data.GreetingsFile)
}

// Parse builds a Table from the JSON encoding of a flat string-to-string object.
func Parse(doc []byte) (*Table, error) {
	var entries map[string]string
	if err := json.Unmarshal(doc, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	// "null" decodes into a nil map without error.
	if entries == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformed)
	}
	return NewTable(entries)
}

// Lookup returns the greeting for code. code must already be canonical.
func (t *Table) Lookup(code string) (string, bool) {
	msg, ok := t.entries[code]
	return msg, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Codes returns the country codes in sorted order.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.entries))
	for code := range t.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func displayPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
