package vcs

import (
	"os"
	"path/filepath"
	"strings"
)

// GitRevision returns the short commit hash and active branch of the Git
// repository rooted at repopath. Failures of any kind (git not installed, no
// .git directory, process error) are swallowed and yield two empty strings.
// The branch alone is empty when `git branch` marks zero or several lines
// active.
func (c *Client) GitRevision(repopath string) (commit, branch string) {
	git, ok := c.Locator.Find("git")
	if !ok || !isDir(filepath.Join(repopath, ".git")) {
		return "", ""
	}

	out, _, code, err := c.Runner.Capture(repopath, git, "rev-parse", "--short", "HEAD")
	if err != nil || code != 0 {
		return "", ""
	}
	commit = strings.TrimSpace(out)

	out, _, code, err = c.Runner.Capture(repopath, git, "branch")
	if err != nil || code != 0 {
		return "", ""
	}
	var active []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "*") {
			active = append(active, line)
		}
	}
	if len(active) == 1 {
		branch = strings.TrimSpace(strings.TrimPrefix(active[0], "*"))
	}
	return commit, branch
}

// HgRevision returns the (global, local, branch) revision triple for the
// Mercurial repository at repopath, via `hg id -nib`. All three are empty on
// any failure.
func (c *Client) HgRevision(repopath string) (global, local, branch string) {
	if !isDir(filepath.Join(repopath, ".hg")) {
		return "", "", ""
	}
	hg, ok := c.Locator.Find("hg")
	if !ok {
		return "", "", ""
	}

	out, _, code, err := c.Runner.Capture("", hg, "id", "-nib", repopath)
	if err != nil || code != 0 {
		return "", "", ""
	}
	// Split on whitespace at most twice so branch names containing spaces
	// survive in the third field.
	fields := splitFieldsN(strings.TrimSpace(out), 3)
	if len(fields) != 3 {
		return "", "", ""
	}
	return fields[0], fields[1], fields[2]
}

// splitFieldsN splits s on runs of spaces and tabs into at most n fields,
// keeping any remaining whitespace inside the last field.
func splitFieldsN(s string, n int) []string {
	var fields []string
	rest := s
	for len(fields) < n-1 {
		idx := strings.IndexAny(rest, " \t")
		if idx < 0 {
			break
		}
		fields = append(fields, rest[:idx])
		rest = strings.TrimLeft(rest[idx:], " \t")
	}
	if rest != "" {
		fields = append(fields, rest)
	}
	return fields
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
