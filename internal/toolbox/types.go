package toolbox

import (
	"strings"

	"toolboxmenu/internal/config"
)

// Tool is one installed IDE as recorded in the launcher's state.json.
type Tool struct {
	ChannelID       string `json:"channelId"`
	ToolID          string `json:"toolId"`
	ProductCode     string `json:"productCode"`
	Tag             string `json:"tag"`
	DisplayName     string `json:"displayName"`
	DisplayVersion  string `json:"displayVersion"`
	BuildNumber     string `json:"buildNumber"`
	InstallLocation string `json:"installLocation"`
	LaunchCommand   string `json:"launchCommand"` // relative to InstallLocation
}

// Executable is the absolute path of the tool's launcher binary.
func (t Tool) Executable() string {
	return config.WindowsJoin(t.InstallLocation, t.LaunchCommand)
}

// KeyName is DisplayName made safe for use as a single registry key name.
func (t Tool) KeyName() string {
	return strings.ReplaceAll(strings.TrimSpace(t.DisplayName), `\`, "-")
}
