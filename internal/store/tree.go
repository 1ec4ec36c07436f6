package store

import (
	"errors"
	"strings"
)

// ErrNotExist reports a missing key or value.
var ErrNotExist = errors.New("does not exist")

// Tree is a hierarchical key-value store rooted at the current user's hive.
// Paths are backslash separated and relative to the root.
type Tree interface {
	// CreateKey opens path for writing, creating it and any missing parents.
	CreateKey(path string) (Key, error)
	// OpenKey opens an existing key for reading.
	OpenKey(path string) (Key, error)
	// DeleteTree removes path and everything below it. A missing path is not an error.
	DeleteTree(path string) error
}

// Key is an open handle. Callers must Close it.
type Key interface {
	SetString(name, value string) error
	// GetString reads a string value; "" names the default value.
	GetString(name string) (string, error)
	Close() error
}

// PathError records a failed tree operation and the key it touched.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error { return e.Err }

// Join joins key path elements with a single backslash.
func Join(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		e = strings.Trim(e, `\`)
		if e == "" {
			continue
		}
		parts = append(parts, e)
	}
	return strings.Join(parts, `\`)
}

// split breaks a key path into its non-empty segments.
func split(path string) []string {
	var out []string
	for _, s := range strings.Split(path, `\`) {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func valueLabel(name string) string {
	if name == "" {
		return "(default)"
	}
	return name
}
