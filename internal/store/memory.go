package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// Memory is an in-memory Tree. Key and value names compare
// case-insensitively like the registry, but keep the case they were created
// with. It also counts open handles and can inject failures.
type Memory struct {
	mu    sync.Mutex
	root  *node
	open  int
	fails map[string]error
}

type node struct {
	name     string
	children map[string]*node
	values   map[string]value
}

type value struct {
	name string
	data string
}

func newNode(name string) *node {
	return &node{name: name, children: map[string]*node{}, values: map[string]value{}}
}

// NewMemory returns an empty tree.
func NewMemory() *Memory {
	return &Memory{root: newNode(""), fails: map[string]error{}}
}

// FailOn makes op ("create", "open", "delete", "set" or "close") on path
// return err. A failing close still releases the handle.
func (m *Memory) FailOn(op, path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fails[failKey(op, path)] = err
}

// OpenHandles reports how many keys are open and not yet closed.
func (m *Memory) OpenHandles() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *Memory) CreateKey(path string) (Key, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("create", path); err != nil {
		return nil, &PathError{Op: "create", Path: path, Err: err}
	}
	segs := split(path)
	if len(segs) == 0 {
		return nil, &PathError{Op: "create", Path: path, Err: errors.New("empty key path")}
	}
	n := m.root
	for _, s := range segs {
		c, ok := n.children[strings.ToLower(s)]
		if !ok {
			c = newNode(s)
			n.children[strings.ToLower(s)] = c
		}
		n = c
	}
	m.open++
	return &memKey{m: m, n: n, path: path, writable: true}, nil
}

func (m *Memory) OpenKey(path string) (Key, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("open", path); err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}
	n := m.lookup(path)
	if n == nil {
		return nil, &PathError{Op: "open", Path: path, Err: ErrNotExist}
	}
	m.open++
	return &memKey{m: m, n: n, path: path}, nil
}

func (m *Memory) DeleteTree(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("delete", path); err != nil {
		return &PathError{Op: "delete", Path: path, Err: err}
	}
	segs := split(path)
	if len(segs) == 0 {
		return &PathError{Op: "delete", Path: path, Err: errors.New("refusing to delete the root")}
	}
	parent := m.lookup(strings.Join(segs[:len(segs)-1], `\`))
	if parent == nil {
		return nil
	}
	delete(parent.children, strings.ToLower(segs[len(segs)-1]))
	return nil
}

// Exists reports whether the key at path is present.
func (m *Memory) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookup(path) != nil
}

// Subkeys lists the immediate children of path, sorted case-insensitively.
func (m *Memory) Subkeys(path string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.lookup(path)
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c.name)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i]) < strings.ToLower(out[j]) })
	return out
}

// Snapshot flattens the subtree at path into key path -> value name -> data.
// Key paths are relative to path; the key itself is "". A missing path
// yields nil.
func (m *Memory) Snapshot(path string) map[string]map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.lookup(path)
	if n == nil {
		return nil
	}
	out := map[string]map[string]string{}
	var walk func(prefix string, n *node)
	walk = func(prefix string, n *node) {
		vals := make(map[string]string, len(n.values))
		for _, v := range n.values {
			vals[v.name] = v.data
		}
		out[prefix] = vals
		for _, c := range n.children {
			walk(Join(prefix, c.name), c)
		}
	}
	walk("", n)
	return out
}

func (m *Memory) lookup(path string) *node {
	n := m.root
	for _, s := range split(path) {
		c, ok := n.children[strings.ToLower(s)]
		if !ok {
			return nil
		}
		n = c
	}
	return n
}

func (m *Memory) failure(op, path string) error {
	return m.fails[failKey(op, path)]
}

func failKey(op, path string) string {
	return op + " " + strings.ToLower(Join(path))
}

type memKey struct {
	m        *Memory
	n        *node
	path     string
	writable bool
	closed   bool
}

var errClosed = errors.New("key handle is closed")

func (k *memKey) SetString(name, data string) error {
	k.m.mu.Lock()
	defer k.m.mu.Unlock()
	op := "set " + valueLabel(name)
	switch {
	case k.closed:
		return &PathError{Op: op, Path: k.path, Err: errClosed}
	case !k.writable:
		return &PathError{Op: op, Path: k.path, Err: errors.New("key opened read-only")}
	}
	if err := k.m.failure("set", k.path); err != nil {
		return &PathError{Op: op, Path: k.path, Err: err}
	}
	k.n.values[strings.ToLower(name)] = value{name: name, data: data}
	return nil
}

func (k *memKey) GetString(name string) (string, error) {
	k.m.mu.Lock()
	defer k.m.mu.Unlock()
	op := "get " + valueLabel(name)
	if k.closed {
		return "", &PathError{Op: op, Path: k.path, Err: errClosed}
	}
	v, ok := k.n.values[strings.ToLower(name)]
	if !ok {
		return "", &PathError{Op: op, Path: k.path, Err: ErrNotExist}
	}
	return v.data, nil
}

func (k *memKey) Close() error {
	k.m.mu.Lock()
	defer k.m.mu.Unlock()
	if k.closed {
		return &PathError{Op: "close", Path: k.path, Err: errClosed}
	}
	k.closed = true
	k.m.open--
	if err := k.m.failure("close", k.path); err != nil {
		return &PathError{Op: "close", Path: k.path, Err: err}
	}
	return nil
}
