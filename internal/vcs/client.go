package vcs

// Client bundles the executable locator and process runner used by every
// query. Calls share no state: each one re-resolves the repository and opens
// its own process.
type Client struct {
	Locator Locator
	Runner  Runner

	// ExtraTools are user-configured launch candidates, keyed by VCS name
	// then action. They are tried before the built-in candidates.
	ExtraTools map[string]map[Action][]Tool
}

// NewClient returns a Client backed by the real search path and os/exec.
func NewClient() *Client {
	return &Client{Locator: PathLocator{}, Runner: ExecRunner{}}
}

// IsGitInstalled reports whether the git executable is on the search path.
func (c *Client) IsGitInstalled() bool {
	_, ok := c.Locator.Find("git")
	return ok
}

// IsHgInstalled reports whether the hg executable is on the search path.
func (c *Client) IsHgInstalled() bool {
	_, ok := c.Locator.Find("hg")
	return ok
}

// candidates returns the launch candidates for an action, with any
// user-configured tools ahead of the built-in ones.
func (c *Client) candidates(desc *Descriptor, action Action) []Tool {
	extra := c.ExtraTools[desc.Name][action]
	if len(extra) == 0 {
		return desc.Actions[action]
	}
	return append(append([]Tool{}, extra...), desc.Actions[action]...)
}
