// Package inspect renders VCS query results for the command line.
package inspect

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/joelmoss/vcsinfo/internal/config"
	"github.com/joelmoss/vcsinfo/internal/errs"
	"github.com/joelmoss/vcsinfo/internal/ui"
	"github.com/joelmoss/vcsinfo/internal/vcs"
	"github.com/joelmoss/vcsinfo/internal/watch"
)

// VCSClient is the slice of vcs.Client the service depends on. Abstracted
// for testability.
type VCSClient interface {
	Status(path string) vcs.Status
	GitRevision(repopath string) (commit, branch string)
	HgRevision(repopath string) (global, local, branch string)
	GitRefs(path string) vcs.RefSet
	RunAction(path string, action vcs.Action) error
	InstalledTools(path string, action vcs.Action) ([]string, error)
	LaunchTool(path string, action vcs.Action, name string) error
}

// PromptFunc and ChooseFunc abstract interactive prompts for testability.
type PromptFunc func(message string) (bool, error)
type ChooseFunc func(message string, options []string) (string, error)

// Service orchestrates VCS queries and their presentation.
type Service struct {
	VCS       VCSClient
	Config    *config.Config
	Out       io.Writer
	Verbose   bool
	ConfirmFn PromptFunc
	ChooseFn  ChooseFunc
}

func (s *Service) output() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stdout
}

func (s *Service) say(msg string) {
	fmt.Fprintln(s.output(), msg)
}

func (s *Service) sayStatus(status, msg string) {
	if s.Verbose {
		fmt.Fprintf(s.output(), "%12s  %s\n", status, msg)
	}
}

// Root prints the repository root containing path.
func (s *Service) Root(path string) error {
	root, ok := vcs.ResolveRoot(path)
	if !ok {
		return errs.ErrNoRepository
	}
	if desc, ok := vcs.DescribeAt(root); ok {
		s.sayStatus("repo", fmt.Sprintf("Detected %s", desc.Name))
	}
	s.say(ui.DisplayPath(root))
	return nil
}

// Status prints the working-tree status of the repository containing path.
func (s *Service) Status(path string) error {
	s.printStatus(s.VCS.Status(path))
	return nil
}

func (s *Service) printStatus(st vcs.Status) {
	switch st.State {
	case vcs.StatusNoRepository:
		s.say(ui.Dim("Not inside a Git or Mercurial repository."))
	case vcs.StatusUnknown:
		s.say(ui.Yellow("Status unknown. The VCS tool is missing or reported an error."))
	case vcs.StatusKnown:
		if len(st.Entries) == 0 {
			s.say(ui.Green("Working tree clean."))
			return
		}
		paths := make([]string, 0, len(st.Entries))
		for p := range st.Entries {
			paths = append(paths, p)
		}
		sort.Strings(paths)

		rows := make([][]string, 0, len(paths))
		for _, p := range paths {
			rows = append(rows, []string{colorCode(st.Entries[p]), p})
		}
		ui.PrintTable(s.output(), rows, 2)
	}
}

func colorCode(code vcs.StatusCode) string {
	switch code {
	case vcs.Untracked:
		return ui.Yellow(code.String())
	case vcs.Ignored:
		return ui.Dim(code.String())
	case vcs.Modified:
		return ui.Red(code.String())
	case vcs.Added:
		return ui.Green(code.String())
	}
	return code.String()
}

// Revision prints the current revision of the repository containing path,
// in the form the detected VCS reports it.
func (s *Service) Revision(path string) error {
	root, ok := vcs.ResolveRoot(path)
	if !ok {
		return errs.ErrNoRepository
	}
	desc, ok := vcs.DescribeAt(root)
	if !ok {
		return errs.ErrNoRepository
	}
	s.sayStatus("repo", fmt.Sprintf("Detected %s at %s", desc.Name, ui.DisplayPath(root)))

	switch desc.Name {
	case "Git":
		commit, branch := s.VCS.GitRevision(root)
		if commit == "" {
			s.say(ui.Dim("Revision unavailable."))
			return nil
		}
		if branch == "" {
			branch = ui.Dim("(no branch)")
		}
		s.say(fmt.Sprintf("%s %s", ui.Bold(commit), branch))
	case "Mercurial":
		global, local, branch := s.VCS.HgRevision(root)
		if global == "" {
			s.say(ui.Dim("Revision unavailable."))
			return nil
		}
		s.say(fmt.Sprintf("%s %s %s", ui.Bold(global), local, branch))
	}
	return nil
}

// Refs prints the branches, tags and modified files of the Git checkout
// containing path.
func (s *Service) Refs(path string) error {
	rs := s.VCS.GitRefs(path)

	if rs.ActiveBranch != "" {
		s.say(fmt.Sprintf("On branch %s", ui.Bold(rs.ActiveBranch)))
	}
	for _, ref := range rs.Refs {
		if ref == rs.ActiveBranch {
			s.say("* " + ui.Green(ref))
		} else {
			s.say("  " + ref)
		}
	}
	if len(rs.ModifiedFiles) > 0 {
		s.say("")
		s.say(ui.Yellow(fmt.Sprintf("%d modified file(s):", len(rs.ModifiedFiles))))
		for _, f := range rs.ModifiedFiles {
			s.say("  " + f)
		}
	}
	return nil
}

// Launch starts the GUI tool for a commit or browse action. Unless yes is
// set, the user is asked to confirm first (subject to the confirm_launch
// setting). With choose set and several candidate tools installed, the user
// picks which one to start.
func (s *Service) Launch(path string, action vcs.Action, yes, choose bool) error {
	names, err := s.VCS.InstalledTools(path, action)
	if err != nil {
		return err
	}

	target := ""
	if len(names) > 0 {
		target = names[0]
		if choose && len(names) > 1 {
			target, err = s.ChooseFn(fmt.Sprintf("Launch which %s tool?", action), names)
			if err != nil {
				return err
			}
		}
	}

	if target != "" && !yes {
		settings, err := s.Config.Read()
		if err != nil {
			return err
		}
		if settings.ShouldConfirmLaunch() {
			confirmed, err := s.ConfirmFn(fmt.Sprintf("Launch %s for %s?", target, ui.DisplayPath(path)))
			if err != nil {
				return err
			}
			if !confirmed {
				s.say(ui.Yellow("Aborting. No tool was launched."))
				return nil
			}
		}
	}

	if target == "" {
		// RunAction reports the full candidate list in its error.
		return s.VCS.RunAction(path, action)
	}
	if err := s.VCS.LaunchTool(path, action, target); err != nil {
		return err
	}
	s.say(ui.Green(fmt.Sprintf("Launched %s.", target)))
	return nil
}

// WatchStatus prints the status and re-prints it whenever the repository
// changes, until the context is cancelled.
func (s *Service) WatchStatus(ctx context.Context, path string) error {
	root, ok := vcs.ResolveRoot(path)
	if !ok {
		return errs.ErrNoRepository
	}
	desc, _ := vcs.DescribeAt(root)

	w, err := watch.New(root, metadataDirs(desc))
	if err != nil {
		return err
	}
	defer w.Close()

	s.printStatus(s.VCS.Status(path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.Events:
			// Let a burst of events settle, then drain the backlog.
			time.Sleep(watch.Debounce)
			select {
			case <-w.Events:
			default:
			}
			s.say("")
			s.say(ui.Dim(time.Now().Format("15:04:05")))
			s.printStatus(s.VCS.Status(path))
		}
	}
}

// metadataDirs lists the VCS metadata directories worth watching, relative
// to the repository root. The object stores are deliberately excluded.
func metadataDirs(desc *vcs.Descriptor) []string {
	if desc == nil {
		return nil
	}
	switch desc.Name {
	case "Git":
		return []string{".git/refs", ".git/logs"}
	case "Mercurial":
		return []string{".hg/store"}
	}
	return nil
}
