// Package runner copies the Gradle wrapper into a generated project and runs
// the requested Gradle tasks in it.
package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/modu-ai/liftoff/internal/defs"
	"github.com/modu-ai/liftoff/internal/template"
	"github.com/modu-ai/liftoff/pkg/models"
)

// ErrGradleFailed indicates the Gradle process exited unsuccessfully.
var ErrGradleFailed = errors.New("gradle process failed")

// Message keys emitted through Logger.Localized.
const (
	MsgWrapperCopied      = "gradle.wrapper.copied"
	MsgWrapperBootstrap   = "gradle.wrapper.bootstrap"
	MsgWrapperUnavailable = "gradle.wrapper.unavailable"
	MsgRunning            = "gradle.running"
)

// maxLineSize bounds a single line of Gradle output.
const maxLineSize = 1 << 20

// Logger receives user-facing output.
type Logger interface {
	// Line emits a literal line, such as one line of Gradle output.
	Line(text string)

	// Localized emits the message registered under key.
	Localized(key string, args ...any)
}

// CommandFactory builds the child process for name and args, rooted at dir.
type CommandFactory func(dir, name string, args ...string) *exec.Cmd

// wrapperFiles maps bundle sources to project paths.
var wrapperFiles = []struct {
	src, dest string
	exec      bool
}{
	{"wrapper/gradlew", defs.GradlewScript, true},
	{"wrapper/gradlew.bat", defs.GradlewBatScript, true},
	{"wrapper/" + defs.WrapperJar, defs.WrapperJar, false},
	{"wrapper/" + defs.WrapperProperties, defs.WrapperProperties, false},
}

// Runner includes the wrapper and invokes Gradle.
type Runner struct {
	deployer template.Deployer
	command  CommandFactory
	goos     string
	logger   *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithCommandFactory replaces how the child process is created.
func WithCommandFactory(f CommandFactory) Option {
	return func(r *Runner) { r.command = f }
}

// WithGOOS overrides the operating system used to pick the invoker.
func WithGOOS(goos string) Option {
	return func(r *Runner) { r.goos = goos }
}

// WithDiagnostics sets the diagnostic logger.
func WithDiagnostics(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// New creates a Runner that copies wrapper files through d.
func New(d template.Deployer, opts ...Option) *Runner {
	r := &Runner{
		deployer: d,
		command:  defaultCommand,
		goos:     runtime.GOOS,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func defaultCommand(dir, name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd
}

// Command returns the argument vector that runs tasks. On Windows the
// invoker goes through cmd; elsewhere it runs directly. The wrapper is
// preferred over a global gradle whenever it was included.
func Command(goos string, wrapper bool, tasks []string) []string {
	var argv []string
	switch {
	case goos == "windows" && wrapper:
		argv = []string{"cmd", "/c", defs.GradlewBatScript}
	case goos == "windows":
		argv = []string{"cmd", "/c", "gradle"}
	case wrapper:
		argv = []string{"./" + defs.GradlewScript}
	default:
		argv = []string{"gradle"}
	}
	return append(argv, tasks...)
}

// IncludeWrapper copies the wrapper when requested and then runs the
// selected Gradle tasks, if any. Gradle runs at most once and is not retried.
//
// When the bundled wrapper jar cannot start the wrapper, the jar is left out
// and the global gradle regenerates it with the wrapper task in front of the
// requested tasks. If gradle is not installed and no tasks were requested,
// a notice is logged instead of failing.
func (r *Runner) IncludeWrapper(sel *models.ProjectSelections, logger Logger) error {
	dest := sel.Basic.Destination
	tasks := sel.Advanced.GradleTasks

	if sel.Advanced.AddWrapper {
		usable, err := r.copyWrapper(dest)
		if err != nil {
			return err
		}
		if !usable {
			return r.bootstrapWrapper(dest, tasks, logger)
		}
		logger.Localized(MsgWrapperCopied)
	}

	if len(tasks) == 0 {
		return nil
	}

	argv := Command(r.goos, sel.Advanced.AddWrapper, tasks)
	logger.Localized(MsgRunning, strings.Join(argv, " "))
	return r.run(dest, argv, logger)
}

func (r *Runner) bootstrapWrapper(dest string, tasks []string, logger Logger) error {
	argv := Command(r.goos, false, bootstrapTasks(tasks))
	logger.Localized(MsgWrapperBootstrap, strings.Join(argv, " "))

	err := r.run(dest, argv, logger)
	if err != nil && len(tasks) == 0 && errors.Is(err, exec.ErrNotFound) {
		r.logger.Debug("gradle not installed; wrapper jar not generated", "error", err)
		logger.Localized(MsgWrapperUnavailable)
		return nil
	}
	return err
}

// copyWrapper copies the wrapper files and reports whether the jar can start
// the wrapper. An unusable jar is removed again.
func (r *Runner) copyWrapper(dest string) (bool, error) {
	for _, f := range wrapperFiles {
		if err := r.deployer.Copy(dest, f.src, f.dest, template.OriginGenerator); err != nil {
			return false, fmt.Errorf("copy wrapper %s: %w", f.dest, err)
		}
		if f.exec {
			target := filepath.Join(dest, filepath.FromSlash(f.dest))
			if err := os.Chmod(target, defs.ExecPerm); err != nil {
				return false, fmt.Errorf("chmod %s: %w", f.dest, err)
			}
		}
	}

	jar := filepath.Join(dest, filepath.FromSlash(defs.WrapperJar))
	usable, err := wrapperJarUsable(jar)
	if err != nil {
		return false, err
	}
	if !usable {
		r.logger.Debug("bundled wrapper jar lacks the wrapper main class", "path", jar)
		if err := removeIfExists(jar); err != nil {
			return false, fmt.Errorf("remove wrapper jar: %w", err)
		}
	}
	return usable, nil
}

// run starts the process with stderr merged into stdout and forwards every
// line to logger before waiting for the exit status.
func (r *Runner) run(dir string, argv []string, logger Logger) error {
	cmd := r.command(dir, argv[0], argv[1:]...)

	pr, pw, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("create output pipe: %w", err)
	}
	cmd.Stdout = pw
	cmd.Stderr = pw

	r.logger.Debug("starting gradle", "dir", dir, "args", argv)
	if err := cmd.Start(); err != nil {
		_ = pr.Close()
		_ = pw.Close()
		return fmt.Errorf("%w: start: %w", ErrGradleFailed, err)
	}
	// The child holds its own copy; closing ours lets the scanner see EOF.
	_ = pw.Close()

	scanner := bufio.NewScanner(pr)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		logger.Line(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		r.logger.Warn("gradle output truncated", "error", err)
		_, _ = io.Copy(io.Discard, pr)
	}
	_ = pr.Close()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			r.logger.Debug("gradle exited", "code", exitErr.ExitCode())
			return fmt.Errorf("%w: exit code %d", ErrGradleFailed, exitErr.ExitCode())
		}
		return fmt.Errorf("%w: %w", ErrGradleFailed, err)
	}
	r.logger.Debug("gradle completed")
	return nil
}
