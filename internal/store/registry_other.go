//go:build !windows

package store

import "errors"

// Registry is unavailable off Windows; every operation fails with
// errors.ErrUnsupported.
type Registry struct{}

// NewRegistry returns a Tree that always fails on this platform.
func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) CreateKey(path string) (Key, error) {
	return nil, &PathError{Op: "create", Path: path, Err: errors.ErrUnsupported}
}

func (r *Registry) OpenKey(path string) (Key, error) {
	return nil, &PathError{Op: "open", Path: path, Err: errors.ErrUnsupported}
}

func (r *Registry) DeleteTree(path string) error {
	return &PathError{Op: "delete", Path: path, Err: errors.ErrUnsupported}
}
