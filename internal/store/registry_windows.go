//go:build windows

package store

import (
	"errors"

	"golang.org/x/sys/windows/registry"
)

// Registry is the Tree backed by HKEY_CURRENT_USER.
type Registry struct {
	root registry.Key
}

// NewRegistry returns a Tree over the current user's registry hive.
func NewRegistry() *Registry {
	return &Registry{root: registry.CURRENT_USER}
}

func (r *Registry) CreateKey(path string) (Key, error) {
	k, _, err := registry.CreateKey(r.root, path, registry.SET_VALUE|registry.QUERY_VALUE)
	if err != nil {
		return nil, &PathError{Op: "create", Path: path, Err: err}
	}
	return &regKey{k: k, path: path}, nil
}

func (r *Registry) OpenKey(path string) (Key, error) {
	k, err := registry.OpenKey(r.root, path, registry.QUERY_VALUE)
	if err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: mapErr(err)}
	}
	return &regKey{k: k, path: path}, nil
}

func (r *Registry) DeleteTree(path string) error {
	if err := deleteTree(r.root, path); err != nil {
		return &PathError{Op: "delete", Path: path, Err: err}
	}
	return nil
}

// deleteTree removes children depth-first since DeleteKey refuses keys with subkeys.
func deleteTree(parent registry.Key, path string) error {
	k, err := registry.OpenKey(parent, path, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return err
	}
	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		k.Close()
		return err
	}
	for _, name := range names {
		if err := deleteTree(k, name); err != nil {
			k.Close()
			return err
		}
	}
	if err := k.Close(); err != nil {
		return err
	}
	if err := registry.DeleteKey(parent, path); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return err
	}
	return nil
}

type regKey struct {
	k    registry.Key
	path string
}

func (k *regKey) SetString(name, value string) error {
	if err := k.k.SetStringValue(name, value); err != nil {
		return &PathError{Op: "set " + valueLabel(name), Path: k.path, Err: err}
	}
	return nil
}

func (k *regKey) GetString(name string) (string, error) {
	v, typ, err := k.k.GetStringValue(name)
	if err != nil {
		return "", &PathError{Op: "get " + valueLabel(name), Path: k.path, Err: mapErr(err)}
	}
	if typ == registry.EXPAND_SZ {
		if exp, err := registry.ExpandString(v); err == nil {
			v = exp
		}
	}
	return v, nil
}

func (k *regKey) Close() error {
	if err := k.k.Close(); err != nil {
		return &PathError{Op: "close", Path: k.path, Err: err}
	}
	return nil
}

func mapErr(err error) error {
	if errors.Is(err, registry.ErrNotExist) {
		return ErrNotExist
	}
	return err
}
