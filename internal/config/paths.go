package config

import (
	"path/filepath"
	"strings"
)

// Launcher (JetBrains Toolbox) locations. LauncherKey's default value holds
// the install directory, usually %LOCALAPPDATA%\JetBrains\Toolbox\bin.
const (
	LauncherKey   = `Software\JetBrains\Toolbox`
	LauncherExe   = "jetbrains-toolbox.exe"
	StateFileName = "state.json"
)

// Context menu layout under HKEY_CURRENT_USER.
const (
	Brand = "Toolbox"

	// MenuKeyName is the reserved subtree this program owns under each root.
	MenuKeyName = "JetBrainsToolboxMenu"

	BackgroundShellRoot = `Software\Classes\Directory\Background\shell`
	DirectoryShellRoot  = `Software\Classes\Directory\shell`
)

// MenuLabel is the verb shown on the flyout group.
func MenuLabel() string { return "Open with " + Brand }

// MenuRoots lists the context-menu roots the group is written under:
// folder background first, then folder.
func MenuRoots() []string {
	return []string{BackgroundShellRoot, DirectoryShellRoot}
}

// ExecutablePath returns the launcher executable inside its install dir.
// Unlike tool paths (WindowsJoin) this is a host path: Install.Verify stats
// it, and on Windows both joins produce the same string.
func ExecutablePath(installDir string) string {
	return filepath.Join(installDir, LauncherExe)
}

// StateFilePath returns the state file, which lives next to the install dir
// rather than inside it.
func StateFilePath(installDir string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(installDir)), StateFileName)
}

// WindowsJoin joins a directory and a relative file with one backslash,
// independent of the host separator. Registry values always carry Windows
// paths.
func WindowsJoin(dir, file string) string {
	dir = strings.TrimRight(dir, `\/`)
	file = strings.TrimLeft(file, `\/`)
	if dir == "" {
		return file
	}
	if file == "" {
		return dir
	}
	return dir + `\` + file
}
