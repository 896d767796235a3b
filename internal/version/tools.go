package version

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/opmodel/sire/internal/runner"
)

// toolVersionRegex matches version output like "git version 2.43.0" or
// "Python 3.12.1".
var toolVersionRegex = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// ToolInfo describes an external binary.
type ToolInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Path    string `json:"path"`
	Found   bool   `json:"found"`
}

// String returns a one-line summary.
func (t ToolInfo) String() string {
	if !t.Found {
		return fmt.Sprintf("  %-8s not found", t.Name)
	}
	v := t.Version
	if v == "" {
		v = "unknown version"
	}
	return fmt.Sprintf("  %-8s %s (%s)", t.Name, v, t.Path)
}

// DetectTool looks binary up in PATH and asks it for its version.
func DetectTool(ctx context.Context, r runner.Runner, binary string) ToolInfo {
	info := ToolInfo{Name: binary}

	path, err := exec.LookPath(binary)
	if err != nil {
		return info
	}
	info.Path = path
	info.Found = true

	res, err := r.Run(ctx, runner.Command{Name: path, Args: []string{"--version"}})
	if err != nil || !res.OK() {
		return info
	}

	// Python 2 printed its version to stderr.
	info.Version = ParseToolVersion(res.Stdout + res.Stderr)
	return info
}

// ParseToolVersion extracts the first dotted version from output.
func ParseToolVersion(out string) string {
	return toolVersionRegex.FindString(strings.TrimSpace(out))
}
