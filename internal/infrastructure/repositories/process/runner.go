package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
)

// Runner starts external programs and waits for them to exit.
type Runner interface {
	// Run executes name with args inside dir (the current directory when empty).
	// It returns *entities.LaunchError when the program could not be started
	// and a plain error when it exited with a non-zero status.
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs programs with os/exec, streaming their output.
type ExecRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewExecRunner creates a runner forwarding child output to the given writers.
func NewExecRunner(stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{stdout: stdout, stderr: stderr}
}

// NewStdioRunner creates a runner whose children share this process's output.
func NewStdioRunner() *ExecRunner {
	return NewExecRunner(os.Stdout, os.Stderr)
}

func (it *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = it.stdout
	cmd.Stderr = it.stderr

	logger.Debugf("Running %s %s (dir: %q)", name, strings.Join(args, " "), dir)

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%s exited with status %d: %w", name, exitErr.ExitCode(), err)
	}
	return entities.NewLaunchError("run "+name, err)
}
