package vcs

import (
	"os"
	"path/filepath"
	"strings"
)

// RefSet lists a Git repository's refs and pending changes.
type RefSet struct {
	// Refs holds branch names followed by tag names, in output order.
	Refs []string
	// ActiveBranch is empty when it could not be determined.
	ActiveBranch  string
	ModifiedFiles []string
}

// GitRefs returns the branches, tags, active branch and modified files of the
// Git checkout containing path. When path is a regular file its directory is
// used. The three underlying commands run in sequence (status, tag, branch)
// and a failure aborts the rest, returning whatever was gathered so far —
// partial results are part of the contract.
func (c *Client) GitRefs(path string) RefSet {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		path = filepath.Dir(path)
	}

	var (
		rs       RefSet
		branches []string
		tags     []string
	)
	assemble := func() RefSet {
		rs.Refs = append(branches, tags...)
		return rs
	}

	git, ok := c.Locator.Find("git")
	if !ok {
		return assemble()
	}

	out, _, code, err := c.Runner.Capture(path, git, "status", "-s")
	if err != nil || code != 0 {
		return assemble()
	}
	for _, line := range strings.Split(out, "\n") {
		if line != "" {
			rs.ModifiedFiles = append(rs.ModifiedFiles, strings.TrimSpace(line))
		}
	}

	out, _, code, err = c.Runner.Capture(path, git, "tag")
	if err != nil || code != 0 {
		return assemble()
	}
	for _, line := range strings.Split(out, "\n") {
		if line != "" {
			tags = append(tags, strings.TrimSpace(line))
		}
	}

	out, _, code, err = c.Runner.Capture(path, git, "branch", "-a")
	if err != nil || code != 0 {
		return assemble()
	}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "*") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
			rs.ActiveBranch = line
		}
		branches = append(branches, line)
	}

	return assemble()
}
