//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=../../mocks/mock_runner.go -package=mocks
package synadm

import (
	"bytes"
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"matrix-contacts/errors"

	"github.com/gookit/color"
)

// ICommandRunner executes one admin subcommand and returns its standard output.
type ICommandRunner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// ExecRunner runs the synadm binary as a child process, one call at a time.
type ExecRunner struct {
	log        *slog.Logger
	bin        string
	configPath string
	output     string
	// diagnostics receives the "DEBUG: ..." echoes; nil disables them.
	diagnostics io.Writer
	colours     bool
}

func NewExecRunner(log *slog.Logger, bin, configPath, output string, diagnostics io.Writer, colours bool) *ExecRunner {
	return &ExecRunner{
		log:         log,
		bin:         bin,
		configPath:  configPath,
		output:      output,
		diagnostics: diagnostics,
		colours:     colours,
	}
}

// Run starts the command, waits for it, and classifies failures:
// a process that could not be started yields ErrCommandLaunch, a non-zero
// exit yields ErrCommandFailed carrying the child's stderr.
func (r *ExecRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	fullArgs := r.commandArgs(args)
	r.Echo(strings.Join(append([]string{r.bin}, fullArgs...), " "))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.bin, fullArgs...)
	cmd.Stdout = &stdout
	cmd.Stderr = io.MultiWriter(&stderr, &commandLogWriter{logger: r.log, command: strings.Join(args, " ")})
	setPlatformSpecificAttrs(cmd)

	r.log.Debug("Running admin command", "bin", r.bin, "args", fullArgs)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrCommandLaunch, ctx.Err())
		}
		var exitErr *exec.ExitError
		if goerrors.As(err, &exitErr) {
			return stdout.Bytes(), fmt.Errorf("%w: %s", errors.ErrCommandFailed, strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrCommandLaunch, r.bin, err)
	}
	return stdout.Bytes(), nil
}

// Echo writes a "DEBUG: " line to the diagnostics writer when debug output is enabled.
func (r *ExecRunner) Echo(line string) {
	if r.diagnostics == nil {
		return
	}
	prefix := "DEBUG:"
	if r.colours {
		prefix = color.New(color.FgGray).Render(prefix)
	}
	_, _ = fmt.Fprintf(r.diagnostics, "%s %s\n", prefix, line)
}

// commandArgs puts the global options before the subcommand, as synadm expects.
func (r *ExecRunner) commandArgs(args []string) []string {
	var global []string
	if r.configPath != "" {
		global = append(global, "-c", r.configPath)
	}
	if r.output != "" {
		global = append(global, "-o", r.output)
	}
	return append(global, args...)
}
