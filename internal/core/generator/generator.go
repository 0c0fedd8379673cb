// Package generator runs the fixed sequence of stages that turns a set of
// selections into a project tree on disk.
package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/modu-ai/liftoff/internal/catalog"
	"github.com/modu-ai/liftoff/internal/core/project"
	"github.com/modu-ai/liftoff/internal/defs"
	"github.com/modu-ai/liftoff/internal/template"
	"github.com/modu-ai/liftoff/pkg/models"
)

// Stage names, in execution order.
const (
	StageSeed       = "seed"
	StageLanguages  = "languages"
	StageExtensions = "extensions"
	StageTemplate   = "template"
	StagePlatforms  = "platforms"
	StageSkin       = "skin"
	StageProperties = "properties"
	StageSave       = "save"
	StagePostTasks  = "post-tasks"
)

// Result summarizes a generation run.
type Result struct {
	CreatedDirs  []string // Directories created, relative to the destination.
	CreatedFiles []string // Files written, relative to the destination.
	PostTasks    int      // Post tasks executed.
	Platforms    []string // Enabled platforms in generation order.
}

// Reporter observes stage progress.
type Reporter interface {
	StageStarted(name string, index, total int)
	Completed()
}

type nopReporter struct{}

func (nopReporter) StageStarted(string, int, int) {}
func (nopReporter) Completed()                    {}

// Generator produces a project from selections.
type Generator interface {
	// Generate writes the project to sel.Basic.Destination.
	Generate(ctx context.Context, sel *models.ProjectSelections) (*Result, error)
}

type projectGenerator struct {
	deployer template.Deployer
	renderer template.Renderer
	reporter Reporter
	logger   *slog.Logger
}

// NewGenerator creates a Generator. reporter and logger may be nil.
func NewGenerator(d template.Deployer, r template.Renderer, reporter Reporter, logger *slog.Logger) Generator {
	if reporter == nil {
		reporter = nopReporter{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectGenerator{
		deployer: d,
		renderer: r,
		reporter: reporter,
		logger:   logger,
	}
}

type stage struct {
	name string
	run  func(p *project.Project, result *Result) error
}

func (g *projectGenerator) stages() []stage {
	return []stage{
		{StageSeed, g.seed},
		{StageLanguages, g.languages},
		{StageExtensions, g.extensions},
		{StageTemplate, g.applyTemplate},
		{StagePlatforms, g.platforms},
		{StageSkin, g.skin},
		{StageProperties, g.properties},
		{StageSave, g.save},
		{StagePostTasks, g.postTasks},
	}
}

// Generate runs every stage in order. Files written before a failing stage
// are left in place.
func (g *projectGenerator) Generate(ctx context.Context, sel *models.ProjectSelections) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := project.New(sel, catalog.OrderPlatforms(sel.Platforms), g.logger)
	result := &Result{Platforms: p.Platforms()}

	g.logger.Info("generating project",
		"name", sel.Basic.Name,
		"destination", p.Destination(),
		"platforms", result.Platforms,
		"template", sel.Template,
	)

	stages := g.stages()
	for i, s := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.reporter.StageStarted(s.name, i+1, len(stages))
		g.logger.Debug("stage started", "stage", s.name)
		if err := s.run(p, result); err != nil {
			return nil, fmt.Errorf("stage %s: %w", s.name, err)
		}
	}
	g.reporter.Completed()

	g.logger.Info("project generated",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
		"postTasks", result.PostTasks,
	)
	return result, nil
}

// seed queues the shared assets directory and the ignore file.
func (g *projectGenerator) seed(p *project.Project, _ *Result) error {
	p.AddFile(project.SourceDirectory{Project: defs.AssetsDir})
	p.AddFile(project.TemplateFile{Path: defs.GitIgnore, Source: "gitignore.tmpl"})
	return nil
}

// languages initiates Java, then every selected language in order, then
// records the combined list.
func (g *projectGenerator) languages(p *project.Project, _ *Result) error {
	catalog.InitiateJava(p)
	langs := p.Selections().Languages
	for _, id := range langs {
		if err := catalog.InitiateLanguage(p, id); err != nil {
			return err
		}
	}
	catalog.AggregateLanguages(p, langs)
	return nil
}

// extensions initiates official extensions before third-party ones.
func (g *projectGenerator) extensions(p *project.Project, _ *Result) error {
	sel := p.Selections()
	for _, id := range sel.Extensions {
		if err := catalog.InitiateExtension(p, id); err != nil {
			return err
		}
	}
	for _, id := range sel.ThirdParty {
		if err := catalog.InitiateThirdParty(p, id); err != nil {
			return err
		}
	}
	return nil
}

func (g *projectGenerator) applyTemplate(p *project.Project, _ *Result) error {
	id := p.Selections().Template
	if id == "" {
		id = catalog.DefaultTemplate
	}
	return catalog.ApplyTemplate(p, id)
}

// platforms initiates every enabled platform and then writes settings.gradle
// directly to the destination.
func (g *projectGenerator) platforms(p *project.Project, result *Result) error {
	for _, id := range p.Platforms() {
		if err := catalog.InitiatePlatform(p, id); err != nil {
			return err
		}
	}
	written, err := p.WriteSettings(g.deployer, g.renderer)
	if err != nil {
		return err
	}
	result.CreatedFiles = append(result.CreatedFiles, written)
	return nil
}

// properties records the framework and project versions and writes gradle.properties.
func (g *projectGenerator) properties(p *project.Project, result *Result) error {
	ctx := p.Context()
	p.Properties().Set("gdxVersion", ctx.GdxVersion)
	p.Properties().Set("projectVersion", ctx.ProjectVersion)

	written, err := p.WriteProperties(g.deployer)
	if err != nil {
		return err
	}
	result.CreatedFiles = append(result.CreatedFiles, written)
	return nil
}

func (g *projectGenerator) save(p *project.Project, result *Result) error {
	written, err := p.Save(g.deployer, g.renderer)
	if err != nil {
		return err
	}
	result.CreatedDirs = append(result.CreatedDirs, written.Dirs...)
	result.CreatedFiles = append(result.CreatedFiles, written.Files...)
	return nil
}

func (g *projectGenerator) postTasks(p *project.Project, result *Result) error {
	n, err := p.RunPostTasks(g.deployer)
	result.PostTasks = n
	return err
}
