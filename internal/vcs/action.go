package vcs

import (
	"fmt"
	"strings"

	"github.com/joelmoss/vcsinfo/internal/errs"
)

// ToolNotFoundError reports that a repository was recognised but none of the
// candidate tools for the requested action are installed. It carries enough
// for the caller to suggest what to install.
type ToolNotFoundError struct {
	VCS    string
	Action Action
	Tools  []string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("no %s tool for %s is installed. Install one of: %s",
		e.Action, e.VCS, strings.Join(e.Tools, ", "))
}

// RunAction launches the GUI tool for a commit or browse action on the
// repository containing path. The first installed candidate wins and is
// started detached with path as its working directory; RunAction returns as
// soon as the child is launched. Returns errs.ErrNoRepository when path is
// outside any repository and *ToolNotFoundError when no candidate tool is
// installed.
func (c *Client) RunAction(path string, action Action) error {
	root, ok := ResolveRoot(path)
	if !ok {
		return errs.ErrNoRepository
	}
	desc, ok := DescribeAt(root)
	if !ok {
		return errs.ErrNoRepository
	}

	tools := c.candidates(desc, action)
	for _, tool := range tools {
		prog, found := c.Locator.Find(tool.Name)
		if !found {
			continue
		}
		if err := c.Runner.Detach(path, prog, tool.Args...); err != nil {
			return fmt.Errorf("failed to launch %s: %w", tool.Name, err)
		}
		return nil
	}

	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name
	}
	return &ToolNotFoundError{VCS: desc.Name, Action: action, Tools: names}
}

// InstalledTools returns the names of the action's candidate tools that are
// present on the search path, in candidate order.
func (c *Client) InstalledTools(path string, action Action) ([]string, error) {
	root, ok := ResolveRoot(path)
	if !ok {
		return nil, errs.ErrNoRepository
	}
	desc, ok := DescribeAt(root)
	if !ok {
		return nil, errs.ErrNoRepository
	}

	var names []string
	for _, tool := range c.candidates(desc, action) {
		if _, found := c.Locator.Find(tool.Name); found {
			names = append(names, tool.Name)
		}
	}
	return names, nil
}

// LaunchTool launches one named candidate tool of an action, detached. Used
// when the caller has picked a specific tool rather than the first installed
// one.
func (c *Client) LaunchTool(path string, action Action, name string) error {
	root, ok := ResolveRoot(path)
	if !ok {
		return errs.ErrNoRepository
	}
	desc, ok := DescribeAt(root)
	if !ok {
		return errs.ErrNoRepository
	}

	for _, tool := range c.candidates(desc, action) {
		if tool.Name != name {
			continue
		}
		prog, found := c.Locator.Find(tool.Name)
		if !found {
			continue
		}
		if err := c.Runner.Detach(path, prog, tool.Args...); err != nil {
			return fmt.Errorf("failed to launch %s: %w", tool.Name, err)
		}
		return nil
	}
	return &ToolNotFoundError{VCS: desc.Name, Action: action, Tools: []string{name}}
}
