package toolbox

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"toolboxmenu/internal/config"
	"toolboxmenu/internal/store"
)

var (
	// ErrNotInstalled means the launcher's registry pointer is absent.
	ErrNotInstalled = errors.New("JetBrains Toolbox is not installed")
	// ErrMissingExecutable means the launcher binary is not where the registry says.
	ErrMissingExecutable = errors.New("toolbox executable not found")
	// ErrMissingStateFile means state.json is absent or unreadable.
	ErrMissingStateFile = errors.New("toolbox state file not found")
)

// Install describes where the launcher lives on disk.
type Install struct {
	Dir        string
	Executable string
	StateFile  string
}

// Locate reads the launcher install directory from the tree.
func Locate(tree store.Tree) (Install, error) {
	k, err := tree.OpenKey(config.LauncherKey)
	if err != nil {
		if errors.Is(err, store.ErrNotExist) {
			return Install{}, ErrNotInstalled
		}
		return Install{}, err
	}
	defer k.Close()

	dir, err := k.GetString("")
	if err != nil {
		if errors.Is(err, store.ErrNotExist) {
			return Install{}, ErrNotInstalled
		}
		return Install{}, err
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return Install{}, ErrNotInstalled
	}
	return Install{
		Dir:        dir,
		Executable: config.ExecutablePath(dir),
		StateFile:  config.StateFilePath(dir),
	}, nil
}

// Verify checks that the executable and the state file both exist.
func (in Install) Verify() error {
	if err := checkFile(in.Executable); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMissingExecutable, in.Executable, err)
	}
	if err := checkFile(in.StateFile); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMissingStateFile, in.StateFile, err)
	}
	return nil
}

func checkFile(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	if st.IsDir() {
		return errors.New("is a directory")
	}
	return nil
}
