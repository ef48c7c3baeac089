package vcs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestGitRefs(t *testing.T) {
	dir := mkRepo(t, ".git")
	runner := &mockRunner{results: []runResult{
		{stdout: " M pkg/a.go\n?? new.txt\n"},
		{stdout: "v1.0\nv1.1\n"},
		{stdout: "  dev\n* main\n  remotes/origin/main\n"},
	}}
	c := newTestClient(&mockLocator{installed: map[string]string{"git": "/usr/bin/git"}}, runner)

	rs := c.GitRefs(dir)

	wantRefs := []string{"dev", "main", "remotes/origin/main", "v1.0", "v1.1"}
	if !reflect.DeepEqual(rs.Refs, wantRefs) {
		t.Fatalf("expected %v, got %v", wantRefs, rs.Refs)
	}
	if rs.ActiveBranch != "main" {
		t.Fatalf("expected main, got %q", rs.ActiveBranch)
	}
	wantModified := []string{"M pkg/a.go", "?? new.txt"}
	if !reflect.DeepEqual(rs.ModifiedFiles, wantModified) {
		t.Fatalf("expected %v, got %v", wantModified, rs.ModifiedFiles)
	}

	wantCalls := [][]string{
		{"/usr/bin/git", "status", "-s"},
		{"/usr/bin/git", "tag"},
		{"/usr/bin/git", "branch", "-a"},
	}
	if !reflect.DeepEqual(runner.captures, wantCalls) {
		t.Fatalf("expected %v, got %v", wantCalls, runner.captures)
	}
}

func TestGitRefsFilePathUsesContainingDir(t *testing.T) {
	dir := mkRepo(t, ".git")
	file := filepath.Join(dir, "main.go")
	if err := os.WriteFile(file, []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	runner := &mockRunner{}
	c := newTestClient(&mockLocator{installed: map[string]string{"git": "/usr/bin/git"}}, runner)

	c.GitRefs(file)
	if runner.captureDirs[0] != dir {
		t.Fatalf("expected cwd %s, got %s", dir, runner.captureDirs[0])
	}
}

func TestGitRefsNoGitInstalled(t *testing.T) {
	runner := &mockRunner{}
	c := newTestClient(&mockLocator{}, runner)

	rs := c.GitRefs(t.TempDir())
	if len(rs.Refs) != 0 || rs.ActiveBranch != "" || len(rs.ModifiedFiles) != 0 {
		t.Fatalf("expected an empty ref set, got %+v", rs)
	}
	if len(runner.captures) != 0 {
		t.Fatalf("expected no command to run, got %v", runner.captures)
	}
}

func TestGitRefsPartialOnTagFailure(t *testing.T) {
	dir := mkRepo(t, ".git")
	runner := &mockRunner{results: []runResult{
		{stdout: " M pkg/a.go\n"},
		{err: errors.New("spawn failed")},
	}}
	c := newTestClient(&mockLocator{installed: map[string]string{"git": "/usr/bin/git"}}, runner)

	rs := c.GitRefs(dir)
	if !reflect.DeepEqual(rs.ModifiedFiles, []string{"M pkg/a.go"}) {
		t.Fatalf("expected the modified files gathered before the failure, got %v", rs.ModifiedFiles)
	}
	if len(rs.Refs) != 0 || rs.ActiveBranch != "" {
		t.Fatalf("expected no refs after the failure, got %+v", rs)
	}
}

func TestGitRefsPartialOnBranchFailure(t *testing.T) {
	dir := mkRepo(t, ".git")
	runner := &mockRunner{results: []runResult{
		{stdout: ""},
		{stdout: "v1.0\n"},
		{code: 128},
	}}
	c := newTestClient(&mockLocator{installed: map[string]string{"git": "/usr/bin/git"}}, runner)

	rs := c.GitRefs(dir)
	if !reflect.DeepEqual(rs.Refs, []string{"v1.0"}) {
		t.Fatalf("expected only the tags, got %v", rs.Refs)
	}
	if rs.ActiveBranch != "" {
		t.Fatalf("expected an empty active branch, got %q", rs.ActiveBranch)
	}
}
