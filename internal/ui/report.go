package ui

import (
	"fmt"
	"io"

	runewidth "github.com/mattn/go-runewidth"

	"toolboxmenu/internal/config"
	"toolboxmenu/internal/menu"
)

// nameWidth pads tool names so paths line up; longer names are not cut.
const nameWidth = 28

// Report prints one line per written menu entry and a closing summary.
type Report struct {
	w       io.Writer
	entries int
}

// NewReport returns a Report writing to w.
func NewReport(w io.Writer) *Report {
	return &Report{w: w}
}

// Entry is a menu.Reporter.
func (r *Report) Entry(e menu.Entry) {
	r.entries++
	fmt.Fprintln(r.w, EntryLine(e))
}

// Summary prints the totals line for the given number of synchronized tools.
func (r *Report) Summary(tools int) {
	fmt.Fprintf(r.w, "\n%s %d tool(s), %d menu entr%s under %q\n",
		AccentBold().Render("Synchronized"),
		tools, r.entries, plural(r.entries), config.MenuLabel())
}

// EntryLine renders e as "✓ <scope> <name> <exe>".
func EntryLine(e menu.Entry) string {
	name := runewidth.FillRight(e.Name, nameWidth)
	return fmt.Sprintf("%s %s %s %s",
		AccentBold().Render("✓"),
		ScopeStyle().Render(fmt.Sprintf("%-10s", scope(e.Root))),
		NameStyle().Render(name),
		MutedStyle().Render(e.Executable),
	)
}

func scope(root string) string {
	switch root {
	case config.BackgroundShellRoot:
		return "background"
	case config.DirectoryShellRoot:
		return "folder"
	}
	return root
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
