//go:build windows

package store

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"golang.org/x/sys/windows/registry"
)

// scratchKey returns a unique key under HKCU\Software, removed after the test.
func scratchKey(t *testing.T) string {
	t.Helper()
	path := Join("Software", "toolboxmenu-test-"+strconv.FormatInt(time.Now().UnixNano(), 36))
	t.Cleanup(func() { _ = deleteTree(registry.CURRENT_USER, path) })
	return path
}

func TestRegistry_DeleteTreeNested(t *testing.T) {
	r := NewRegistry()
	base := scratchKey(t)
	for _, p := range []string{
		Join(base, `Group\shell\Rider\command`),
		Join(base, `Group\shell\WebStorm\command`),
		Join(base, "Sibling"),
	} {
		k, err := r.CreateKey(p)
		if err != nil {
			t.Fatalf("CreateKey(%s) error: %v", p, err)
		}
		if err := k.SetString("", "value"); err != nil {
			t.Fatalf("SetString error: %v", err)
		}
		if err := k.Close(); err != nil {
			t.Fatalf("Close error: %v", err)
		}
	}

	if err := r.DeleteTree(Join(base, "Group")); err != nil {
		t.Fatalf("DeleteTree error: %v", err)
	}
	if _, err := r.OpenKey(Join(base, "Group")); !errors.Is(err, ErrNotExist) {
		t.Fatalf("expected group removed, got %v", err)
	}
	k, err := r.OpenKey(Join(base, "Sibling"))
	if err != nil {
		t.Fatalf("sibling must survive: %v", err)
	}
	got, err := k.GetString("")
	k.Close()
	if err != nil || got != "value" {
		t.Fatalf("sibling value = %q, %v", got, err)
	}
}

func TestRegistry_DeleteTreeMissingIsNoop(t *testing.T) {
	r := NewRegistry()
	base := scratchKey(t)
	if err := r.DeleteTree(Join(base, `Nope\Deeper`)); err != nil {
		t.Fatalf("DeleteTree missing error: %v", err)
	}
	if _, err := r.OpenKey(base); !errors.Is(err, ErrNotExist) {
		t.Fatalf("expected ErrNotExist for never-created key, got %v", err)
	}
}
