// Package cli provides the Cobra command tree and dependency injection
// wiring for the liftoff CLI. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/modu-ai/liftoff/internal/cli/wizard"
	"github.com/modu-ai/liftoff/internal/gradle/runner"
	"github.com/modu-ai/liftoff/internal/i18n"
	"github.com/modu-ai/liftoff/internal/template"
	"github.com/modu-ai/liftoff/internal/ui"
	"github.com/modu-ai/liftoff/pkg/models"
)

// WizardFunc asks for selections interactively, updating sel in place.
type WizardFunc func(sel *models.ProjectSelections, loc *i18n.Localizer) error

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Deployer template.Deployer
	Renderer template.Renderer
	Runner   *runner.Runner
	Headless *ui.HeadlessManager
	Wizard   WizardFunc
	Logger   *slog.Logger

	// Environ replaces the process environment when non-nil.
	Environ map[string]string
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// NewDependencies wires the embedded bundle, the Gradle runner and the
// console. A nil logger discards diagnostics.
func NewDependencies(logger *slog.Logger) (*Dependencies, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	deployer, renderer, err := template.NewEmbeddedDeployer()
	if err != nil {
		return nil, fmt.Errorf("load embedded templates: %w", err)
	}
	return &Dependencies{
		Deployer: deployer,
		Renderer: renderer,
		Runner:   runner.New(deployer, runner.WithDiagnostics(logger)),
		Headless: ui.NewHeadlessManager(),
		Wizard:   wizard.Run,
		Logger:   logger,
	}, nil
}

// InitDependencies creates the global dependencies unless they are already set.
func InitDependencies(logger *slog.Logger) error {
	if deps != nil {
		return nil
	}
	d, err := NewDependencies(logger)
	if err != nil {
		return err
	}
	deps = d
	return nil
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// getenv reads key from Environ, falling back to the process environment.
func (d *Dependencies) getenv(key string) string {
	if d.Environ != nil {
		return d.Environ[key]
	}
	return os.Getenv(key)
}
