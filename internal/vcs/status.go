package vcs

import "strings"

// StatusCode classifies a working-tree file.
type StatusCode int

const (
	Untracked StatusCode = iota
	Ignored
	Modified
	Added
)

func (c StatusCode) String() string {
	switch c {
	case Untracked:
		return "untracked"
	case Ignored:
		return "ignored"
	case Modified:
		return "modified"
	case Added:
		return "added"
	}
	return "unknown"
}

// StatusState distinguishes the three status outcomes: not inside a
// repository, repository found but the state could not be read, and a
// successfully parsed state.
type StatusState int

const (
	StatusNoRepository StatusState = iota
	StatusUnknown
	StatusKnown
)

// Status is the result of a working-tree status query. Entries is only
// populated when State is StatusKnown; an empty map then means a clean tree.
type Status struct {
	State   StatusState
	Entries map[string]StatusCode
}

// Status reports the working-tree state of the repository containing path.
// A path outside any repository yields StatusNoRepository. A tool error,
// anything on stderr, or a missing status tool yields StatusUnknown, so
// callers can tell "no changes" apart from "could not ask".
func (c *Client) Status(path string) Status {
	root, ok := ResolveRoot(path)
	if !ok {
		return Status{State: StatusNoRepository}
	}
	desc, ok := DescribeAt(root)
	if !ok {
		return Status{State: StatusNoRepository}
	}

	for _, tool := range desc.Actions[actionState] {
		if _, found := c.Locator.Find(tool.Name); !found {
			continue
		}
		stdout, stderr, code, err := c.Runner.Capture(root, tool.Name, tool.Args...)
		if err != nil || code < 0 || stderr != "" {
			return Status{State: StatusUnknown}
		}
		return Status{State: StatusKnown, Entries: desc.parseStatus(stdout)}
	}

	// Repository recognised but no status tool installed.
	return Status{State: StatusUnknown}
}

// parseStatus maps line-oriented status output to file path → code. The
// marker occupies the first markerWidth characters and the path starts at
// pathOffset; lines with an unrecognised marker are skipped.
func (d *Descriptor) parseStatus(output string) map[string]StatusCode {
	entries := map[string]StatusCode{}
	for _, line := range strings.Split(output, "\n") {
		if line == "" || len(line) <= d.pathOffset {
			continue
		}
		marker := strings.TrimSpace(line[:d.markerWidth])
		code, ok := d.statusMarkers[marker]
		if !ok {
			continue
		}
		entries[line[d.pathOffset:]] = code
	}
	return entries
}
