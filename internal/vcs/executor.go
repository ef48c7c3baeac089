package vcs

import (
	"bytes"
	"errors"
	"os/exec"

	"github.com/joelmoss/vcsinfo/internal/log"
)

// Locator finds installed executables. Abstracted for testability.
type Locator interface {
	Find(name string) (string, bool)
}

// Runner executes external VCS tools. Capture blocks until the child exits;
// Detach launches and returns immediately.
type Runner interface {
	// Capture runs the tool and returns its stdout, stderr and exit code.
	// err is non-nil only when the process could not be started. There is
	// no timeout: a hung tool blocks the caller indefinitely.
	Capture(dir string, name string, args ...string) (stdout, stderr string, exitCode int, err error)

	// Detach starts the tool and does not wait for it to exit.
	Detach(dir string, name string, args ...string) error
}

// PathLocator looks up executables on the search path.
type PathLocator struct{}

func (PathLocator) Find(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}

// ExecRunner runs actual commands via os/exec.
type ExecRunner struct{}

func (ExecRunner) Capture(dir string, name string, args ...string) (string, string, int, error) {
	cmd := exec.Command(name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		log.Printf("capture %s %v: %v", name, args, err)
		return "", "", -1, err
	}

	code := 0
	if cmd.ProcessState != nil {
		code = cmd.ProcessState.ExitCode()
	}
	log.Printf("capture %s %v in %q: exit %d", name, args, dir, code)
	return stdout.String(), stderr.String(), code, nil
}

func (ExecRunner) Detach(dir string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	log.Printf("detached %s %v in %q (pid %d)", name, args, dir, cmd.Process.Pid)

	// Reap in the background so the child never lingers as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}
