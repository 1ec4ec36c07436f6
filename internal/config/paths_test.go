package config

import (
	"path/filepath"
	"testing"
)

func TestWindowsJoin(t *testing.T) {
	cases := []struct {
		dir, file, want string
	}{
		{`C:\Tools\Rider`, "rider64.exe", `C:\Tools\Rider\rider64.exe`},
		{`C:\Tools\Rider\`, "rider64.exe", `C:\Tools\Rider\rider64.exe`},
		{`C:\Tools\Rider`, `bin\rider64.exe`, `C:\Tools\Rider\bin\rider64.exe`},
		{"", "rider64.exe", "rider64.exe"},
		{`C:\Tools`, "", `C:\Tools`},
	}
	for _, c := range cases {
		if got := WindowsJoin(c.dir, c.file); got != c.want {
			t.Errorf("WindowsJoin(%q, %q) = %q, want %q", c.dir, c.file, got, c.want)
		}
	}
}

func TestStateFilePath_SiblingOfInstallDir(t *testing.T) {
	base := t.TempDir()
	bin := filepath.Join(base, "bin")
	if got, want := StateFilePath(bin), filepath.Join(base, "state.json"); got != want {
		t.Fatalf("StateFilePath = %q, want %q", got, want)
	}
	// trailing separator must not change the parent
	if got, want := StateFilePath(bin+string(filepath.Separator)), filepath.Join(base, "state.json"); got != want {
		t.Fatalf("StateFilePath with trailing sep = %q, want %q", got, want)
	}
	if got, want := ExecutablePath(bin), filepath.Join(bin, "jetbrains-toolbox.exe"); got != want {
		t.Fatalf("ExecutablePath = %q, want %q", got, want)
	}
}

func TestMenuRoots(t *testing.T) {
	roots := MenuRoots()
	if len(roots) != 2 || roots[0] != BackgroundShellRoot || roots[1] != DirectoryShellRoot {
		t.Fatalf("unexpected roots: %v", roots)
	}
	if MenuLabel() != "Open with Toolbox" {
		t.Fatalf("unexpected label %q", MenuLabel())
	}
}
