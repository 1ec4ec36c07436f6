package system

import (
	"os"

	clog "github.com/charmbracelet/log"

	"toolboxmenu/internal/version"
)

// Logger is the shared application logger for CLI output.
// It prints to stderr with timestamps enabled; report lines go to stdout.
// Development builds also print debug lines.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "toolboxmenu",
	Level:           levelFor(version.AppVersion),
})

func levelFor(appVersion string) clog.Level {
	if appVersion == "dev" {
		return clog.DebugLevel
	}
	return clog.InfoLevel
}
