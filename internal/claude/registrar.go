package claude

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Registrar runs a synthesized registration command and reports its exit status.
type Registrar interface {
	Register(argv []string) (int, error)
}

// Available returns nil if the claude CLI is on PATH.
func Available() error {
	if _, err := exec.LookPath(Binary); err != nil {
		return fmt.Errorf("%s CLI not found on PATH (install Claude Code first)", Binary)
	}
	return nil
}

// ExecRegistrar runs commands as child processes. A non-zero exit is returned
// as a status with a nil error; err is set only when the process could not run.
type ExecRegistrar struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRegistrar returns a registrar that streams child output to the
// process's own stdout and stderr.
func NewExecRegistrar() *ExecRegistrar {
	return &ExecRegistrar{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (e *ExecRegistrar) Register(argv []string) (int, error) {
	if len(argv) == 0 {
		return -1, fmt.Errorf("empty command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("running %s: %w", argv[0], err)
}
