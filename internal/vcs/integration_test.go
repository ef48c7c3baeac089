package vcs

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func requireTool(t *testing.T, name string) string {
	t.Helper()
	path, err := exec.LookPath(name)
	if err != nil {
		t.Skipf("%s is not installed", name)
	}
	return path
}

func runTool(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("%s %v failed: %v\n%s", name, args, err, out)
	}
}

func TestIntegrationGitStatus(t *testing.T) {
	git := requireTool(t, "git")
	dir := t.TempDir()
	runTool(t, dir, git, "init")
	if err := os.WriteFile(filepath.Join(dir, "newfile.txt"), []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewClient()
	st := c.Status(dir)
	if st.State != StatusKnown {
		t.Fatalf("expected known state, got %v", st.State)
	}
	if code, ok := st.Entries["newfile.txt"]; !ok || code != Untracked {
		t.Fatalf("expected newfile.txt untracked, got %v", st.Entries)
	}

	// Querying from a subdirectory resolves the same root.
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	again := c.Status(sub)
	if code, ok := again.Entries["newfile.txt"]; !ok || code != Untracked {
		t.Fatalf("expected the same entries from a subdirectory, got %v", again.Entries)
	}
}

func TestIntegrationGitRevision(t *testing.T) {
	git := requireTool(t, "git")
	dir := t.TempDir()
	runTool(t, dir, git, "init")
	runTool(t, dir, git, "-c", "user.name=test", "-c", "user.email=test@example.com",
		"commit", "--allow-empty", "-m", "initial")

	c := NewClient()
	commit, branch := c.GitRevision(dir)
	if commit == "" {
		t.Fatal("expected a commit hash")
	}
	if branch == "" {
		t.Fatal("expected an active branch")
	}
}

func TestIntegrationGitRevisionOutsideRepo(t *testing.T) {
	requireTool(t, "git")

	commit, branch := NewClient().GitRevision(t.TempDir())
	if commit != "" || branch != "" {
		t.Fatalf("expected empty results outside a repository, got (%q, %q)", commit, branch)
	}
}

func TestIntegrationGitRefs(t *testing.T) {
	git := requireTool(t, "git")
	dir := t.TempDir()
	runTool(t, dir, git, "init")
	runTool(t, dir, git, "-c", "user.name=test", "-c", "user.email=test@example.com",
		"commit", "--allow-empty", "-m", "initial")

	rs := NewClient().GitRefs(dir)
	if rs.ActiveBranch == "" {
		t.Fatal("expected an active branch")
	}
	found := false
	for _, ref := range rs.Refs {
		if ref == rs.ActiveBranch {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %q in the ref list %v", rs.ActiveBranch, rs.Refs)
	}
}

func TestIntegrationHgRevision(t *testing.T) {
	hg := requireTool(t, "hg")
	dir := t.TempDir()
	runTool(t, dir, hg, "init")

	global, local, branch := NewClient().HgRevision(dir)
	if global == "" || local == "" || branch == "" {
		t.Fatalf("expected a revision triple, got (%q, %q, %q)", global, local, branch)
	}
}
