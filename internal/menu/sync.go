package menu

import (
	"fmt"
	"io"

	clog "github.com/charmbracelet/log"
	"go.uber.org/multierr"

	"toolboxmenu/internal/config"
	"toolboxmenu/internal/store"
	"toolboxmenu/internal/toolbox"
)

// Registry value names Explorer reads for shell verbs.
const (
	valueVerb        = "MUIVerb"
	valueSubCommands = "SubCommands"
	valueIcon        = "Icon"
	valueDefault     = ""

	shellKey   = "shell"
	commandKey = "command"
)

// Entry describes one written tool entry.
type Entry struct {
	Root       string // context-menu root the entry lives under
	Key        string // full key path of the entry
	Name       string
	Executable string
	Command    string
}

// Reporter receives an Entry after it has been written.
type Reporter func(Entry)

// Synchronizer rewrites the "Open with Toolbox" context menus from a tool list.
type Synchronizer struct {
	tree   store.Tree
	roots  []string
	report Reporter
	logger *clog.Logger
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithReporter sets the callback invoked for each written entry.
func WithReporter(r Reporter) Option {
	return func(s *Synchronizer) { s.report = r }
}

// WithLogger sets the logger for debug output.
func WithLogger(l *clog.Logger) Option {
	return func(s *Synchronizer) { s.logger = l }
}

// New returns a Synchronizer writing under config.MenuRoots.
func New(tree store.Tree, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		tree:   tree,
		roots:  config.MenuRoots(),
		report: func(Entry) {},
		logger: clog.New(io.Discard),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// GroupKey returns the reserved group key under root.
func GroupKey(root string) string {
	return store.Join(root, config.MenuKeyName)
}

// Synchronize deletes both menu groups and rebuilds them with one entry per
// tool, in the given order. The first failure aborts the run.
func (s *Synchronizer) Synchronize(launcherExe string, tools []toolbox.Tool) error {
	for _, root := range s.roots {
		group := GroupKey(root)
		s.logger.Debug("removing menu group", "key", group)
		if err := s.tree.DeleteTree(group); err != nil {
			return fmt.Errorf("teardown: %w", err)
		}
	}

	for _, root := range s.roots {
		group := GroupKey(root)
		err := s.writeKey(group,
			attr{valueVerb, config.MenuLabel()},
			attr{valueSubCommands, ""},
			attr{valueIcon, quote(launcherExe)},
		)
		if err != nil {
			return fmt.Errorf("create menu group: %w", err)
		}

		for _, t := range tools {
			e, err := s.writeEntry(root, group, t)
			if err != nil {
				return fmt.Errorf("create entry %q: %w", t.DisplayName, err)
			}
			s.report(e)
		}
		s.logger.Debug("menu group written", "key", group, "entries", len(tools))
	}
	return nil
}

func (s *Synchronizer) writeEntry(root, group string, t toolbox.Tool) (Entry, error) {
	exe := t.Executable()
	e := Entry{
		Root:       root,
		Key:        store.Join(group, shellKey, t.KeyName()),
		Name:       t.DisplayName,
		Executable: exe,
		Command:    CommandLine(exe),
	}
	if err := s.writeKey(e.Key, attr{valueVerb, t.DisplayName}, attr{valueIcon, quote(exe)}); err != nil {
		return e, err
	}
	if err := s.writeKey(store.Join(e.Key, commandKey), attr{valueDefault, e.Command}); err != nil {
		return e, err
	}
	return e, nil
}

type attr struct {
	name, data string
}

// writeKey creates path and sets attrs; the handle is closed on every path.
func (s *Synchronizer) writeKey(path string, attrs ...attr) (err error) {
	k, err := s.tree.CreateKey(path)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, k.Close()) }()
	for _, a := range attrs {
		if err := k.SetString(a.name, a.data); err != nil {
			return err
		}
	}
	return nil
}

// CommandLine is the shell command for exe; Explorer replaces %V with the
// clicked folder.
func CommandLine(exe string) string {
	return quote(exe) + ` "%V"`
}

func quote(s string) string { return `"` + s + `"` }
