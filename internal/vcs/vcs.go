package vcs

import (
	"os"
	"path/filepath"
	"runtime"
)

// Action names a user-facing VCS operation that launches an external tool.
type Action string

const (
	ActionCommit Action = "commit"
	ActionBrowse Action = "browse"

	// actionState is the internal status-query action.
	actionState Action = "cstate"
)

// Tool is an executable name plus the fixed arguments it is invoked with.
type Tool struct {
	Name string
	Args []string
}

// Descriptor describes one supported VCS: how to recognise its repositories
// and which tools serve each action.
type Descriptor struct {
	Name       string
	RootMarker string
	Actions    map[Action][]Tool

	// Status parsing: statusMarkers maps the trimmed marker column to a
	// code, markerWidth is how many leading characters hold the marker and
	// pathOffset is the column at which the file path starts.
	statusMarkers map[string]StatusCode
	markerWidth   int
	pathOffset    int
}

// supported lists the known VCS descriptors. Order matters: when a directory
// carries more than one root marker the first match wins, so Mercurial takes
// precedence over Git.
var supported = []*Descriptor{
	{
		Name:       "Mercurial",
		RootMarker: ".hg",
		Actions: map[Action][]Tool{
			ActionCommit: {{Name: "thg", Args: []string{"commit"}}, {Name: "hgtk", Args: []string{"commit"}}},
			ActionBrowse: {{Name: "thg", Args: []string{"log"}}, {Name: "hgtk", Args: []string{"log"}}},
			actionState:  {{Name: "hg", Args: []string{"status", "-A"}}},
		},
		statusMarkers: map[string]StatusCode{"?": Untracked, "I": Ignored, "M": Modified, "A": Added},
		markerWidth:   1,
		pathOffset:    2,
	},
	{
		Name:       "Git",
		RootMarker: ".git",
		Actions: map[Action][]Tool{
			ActionCommit: {{Name: "git", Args: []string{gitCommitSubcommand()}}},
			ActionBrowse: {{Name: "gitk", Args: nil}},
			actionState:  {{Name: "git", Args: []string{"status", "--ignored", "--porcelain"}}},
		},
		statusMarkers: map[string]StatusCode{"??": Untracked, "!!": Ignored, "M": Modified, "A": Added},
		markerWidth:   2,
		pathOffset:    3,
	},
}

// gitCommitSubcommand picks the commit GUI shipped with Git on Windows, and
// git-cola elsewhere.
func gitCommitSubcommand() string {
	if runtime.GOOS == "windows" {
		return "gui"
	}
	return "cola"
}

// DescribeAt returns the descriptor whose root marker is a directory directly
// under path. The path itself does not have to exist.
func DescribeAt(path string) (*Descriptor, bool) {
	for _, desc := range supported {
		info, err := os.Stat(filepath.Join(path, desc.RootMarker))
		if err == nil && info.IsDir() {
			return desc, true
		}
	}
	return nil, false
}

// ResolveRoot walks upward from path and returns the absolute path of the
// nearest directory containing a VCS root marker. The result reflects the
// filesystem at call time; nothing is cached.
func ResolveRoot(path string) (string, bool) {
	current, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	for {
		if _, ok := DescribeAt(current); ok {
			return current, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// IsRepository reports whether path lies within a supported VCS repository.
func IsRepository(path string) bool {
	_, ok := ResolveRoot(path)
	return ok
}
