// Package xcodebuild invokes the underlying native build/test tool.
package xcodebuild

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildToolInvoker = (*Invoker)(nil)

// DefaultTool is the build tool invoked when none is configured.
const DefaultTool = "xcodebuild"

// Invoker implements ports.BuildToolInvoker using os/exec. The call blocks
// until the tool exits; the tool may parallelize internally, which is opaque
// here.
type Invoker struct {
	tool   string
	logger ports.Logger
}

// NewInvoker creates an Invoker for the given tool binary. An empty tool
// name falls back to DefaultTool.
func NewInvoker(tool string, logger ports.Logger) *Invoker {
	if tool == "" {
		tool = DefaultTool
	}
	return &Invoker{
		tool:   tool,
		logger: logger,
	}
}

// Run invokes the tool with the given arguments, streaming its output to the
// logger. A non-zero exit surfaces as an error with the exit code attached.
func (i *Invoker) Run(ctx context.Context, arguments []string) error {
	cmd := exec.CommandContext(ctx, i.tool, arguments...) //nolint:gosec // arguments are the user's passthrough invocation
	cmd.Env = os.Environ()
	cmd.Stdout = &logWriter{logger: i.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: i.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		err = errors.Join(domain.ErrTestRunFailed, err)
		err = zerr.With(zerr.Wrap(err, "test tool invocation failed"), "tool", i.tool)
		return zerr.With(err, "exit_code", exitCode)
	}

	return nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
