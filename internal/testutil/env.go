package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"toolboxmenu/internal/config"
	"toolboxmenu/internal/store"
)

// StateJSON is a state.json with two tools, Rider then WebStorm.
const StateJSON = `{
  "tools": [
    {
      "channelId": "ch-0",
      "toolId": "Rider",
      "productCode": "RD",
      "tag": "release",
      "displayName": "Rider",
      "displayVersion": "2024.2",
      "buildNumber": "242.20224.431",
      "installLocation": "C:\\Tools\\Rider",
      "launchCommand": "rider64.exe"
    },
    {
      "channelId": "ch-1",
      "toolId": "WebStorm",
      "productCode": "WS",
      "tag": "release",
      "displayName": "WebStorm",
      "displayVersion": "2024.2",
      "buildNumber": "242.20224.426",
      "installLocation": "C:\\Tools\\WebStorm",
      "launchCommand": "bin\\webstorm64.exe"
    }
  ]
}`

// WriteFile writes content to path, creating parent dirs.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// FakeInstall lays out a launcher under a temp dir (bin/ with the
// executable, state.json beside it) and points the tree's launcher key at
// it. It returns the install dir. An empty state skips writing state.json.
func FakeInstall(t *testing.T, tree *store.Memory, state string) string {
	t.Helper()
	base := t.TempDir()
	dir := filepath.Join(base, "bin")
	WriteFile(t, config.ExecutablePath(dir), "MZ")
	if state != "" {
		WriteFile(t, config.StateFilePath(dir), state)
	}
	SetLauncherDir(t, tree, dir)
	return dir
}

// SetLauncherDir stores dir as the launcher key's default value.
func SetLauncherDir(t *testing.T, tree *store.Memory, dir string) {
	t.Helper()
	k, err := tree.CreateKey(config.LauncherKey)
	if err != nil {
		t.Fatalf("create launcher key: %v", err)
	}
	defer k.Close()
	if err := k.SetString("", dir); err != nil {
		t.Fatalf("set launcher dir: %v", err)
	}
}
