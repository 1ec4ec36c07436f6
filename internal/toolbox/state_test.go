package toolbox

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	tu "toolboxmenu/internal/testutil"
)

func TestLoadState_Tools(t *testing.T) {
	p := filepath.Join(t.TempDir(), "state.json")
	tu.WriteFile(t, p, tu.StateJSON)

	got, err := LoadState(p)
	if err != nil {
		t.Fatalf("LoadState error: %v", err)
	}
	want := []Tool{
		{
			ChannelID: "ch-0", ToolID: "Rider", ProductCode: "RD", Tag: "release",
			DisplayName: "Rider", DisplayVersion: "2024.2", BuildNumber: "242.20224.431",
			InstallLocation: `C:\Tools\Rider`, LaunchCommand: "rider64.exe",
		},
		{
			ChannelID: "ch-1", ToolID: "WebStorm", ProductCode: "WS", Tag: "release",
			DisplayName: "WebStorm", DisplayVersion: "2024.2", BuildNumber: "242.20224.426",
			InstallLocation: `C:\Tools\WebStorm`, LaunchCommand: `bin\webstorm64.exe`,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tools mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadState_Missing(t *testing.T) {
	_, err := LoadState(filepath.Join(t.TempDir(), "state.json"))
	if !errors.Is(err, ErrMissingStateFile) {
		t.Fatalf("expected ErrMissingStateFile, got %v", err)
	}
}

func TestParseState_NotFatal(t *testing.T) {
	cases := map[string]string{
		"empty object":   `{}`,
		"invalid json":   `{"tools": [`,
		"tools not list": `{"tools": {"a": 1}}`,
		"tools null":     `{"tools": null}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseState("state.json", []byte(in))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Fatalf("expected empty non-nil list, got %#v", got)
			}
		})
	}
}

func TestParseState_SkipsMalformedRecords(t *testing.T) {
	in := `{"tools": [
		1,
		{"displayName": "", "launchCommand": "x.exe"},
		{"displayName": "GoLand", "installLocation": "C:\\GoLand", "launchCommand": "goland64.exe", "buildNumber": 242},
		{"displayName": "NoCommand", "installLocation": "C:\\X"}
	]}`
	got, err := ParseState("state.json", []byte(in))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if len(got) != 1 || got[0].DisplayName != "GoLand" || got[0].BuildNumber != "242" {
		t.Fatalf("unexpected tools: %#v", got)
	}
}

func TestParseState_EmptyList(t *testing.T) {
	got, err := ParseState("state.json", []byte(`{"tools": []}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no tools, got %v", got)
	}
}

func TestTool_ExecutableAndKeyName(t *testing.T) {
	tool := Tool{DisplayName: "Rider", InstallLocation: `C:\Tools\Rider`, LaunchCommand: "rider64.exe"}
	if got := tool.Executable(); got != `C:\Tools\Rider\rider64.exe` {
		t.Fatalf("Executable = %q", got)
	}
	tool.DisplayName = ` IntelliJ IDEA\Ultimate `
	if got := tool.KeyName(); got != "IntelliJ IDEA-Ultimate" {
		t.Fatalf("KeyName = %q", got)
	}
}
