package toolbox

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseError reports a state file that could be read but not fully
// understood. It is not fatal: LoadState still returns whatever tools it
// could decode, possibly none.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Path, e.Reason)
}

// LoadState reads the launcher's state.json and returns its tools in file
// order. A read failure wraps ErrMissingStateFile.
func LoadState(path string) ([]Tool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingStateFile, path, err)
	}
	return ParseState(path, b)
}

// ParseState decodes state.json content. path is only used in errors.
func ParseState(path string, b []byte) ([]Tool, error) {
	tools := []Tool{}
	if !gjson.ValidBytes(b) {
		return tools, &ParseError{Path: path, Reason: "not valid JSON"}
	}
	res := gjson.GetBytes(b, "tools")
	if !res.Exists() {
		return tools, &ParseError{Path: path, Reason: `missing "tools" field`}
	}
	if !res.IsArray() {
		return tools, &ParseError{Path: path, Reason: `"tools" is not an array`}
	}

	skipped := 0
	res.ForEach(func(_, v gjson.Result) bool {
		t, ok := decodeTool(v)
		if !ok {
			skipped++
			return true
		}
		tools = append(tools, t)
		return true
	})
	if skipped > 0 {
		return tools, &ParseError{Path: path, Reason: fmt.Sprintf("skipped %d malformed tool record(s)", skipped)}
	}
	return tools, nil
}

// decodeTool reads fields leniently; numbers are accepted where the launcher
// writes strings. Records without a display name or launch command cannot
// produce a menu entry.
func decodeTool(v gjson.Result) (Tool, bool) {
	if !v.IsObject() {
		return Tool{}, false
	}
	t := Tool{
		ChannelID:       v.Get("channelId").String(),
		ToolID:          v.Get("toolId").String(),
		ProductCode:     v.Get("productCode").String(),
		Tag:             v.Get("tag").String(),
		DisplayName:     v.Get("displayName").String(),
		DisplayVersion:  v.Get("displayVersion").String(),
		BuildNumber:     v.Get("buildNumber").String(),
		InstallLocation: v.Get("installLocation").String(),
		LaunchCommand:   v.Get("launchCommand").String(),
	}
	if strings.TrimSpace(t.DisplayName) == "" || strings.TrimSpace(t.LaunchCommand) == "" {
		return Tool{}, false
	}
	return t, true
}
