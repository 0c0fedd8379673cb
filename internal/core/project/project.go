package project

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/modu-ai/liftoff/internal/gradle"
	"github.com/modu-ai/liftoff/internal/template"
	"github.com/modu-ai/liftoff/pkg/models"
)

// Project is the state shared by every generation stage. It is created once
// per run and is not safe for concurrent use.
type Project struct {
	sel       *models.ProjectSelections
	ctx       *template.TemplateContext
	platforms []string

	root        *gradle.File
	descriptors map[string]*gradle.File

	files     []PendingFile
	fileIndex map[string]int

	props       PropertyBag
	gwtInherits []string
	tasks       []PostTask

	logger *slog.Logger
}

// New creates a Project for the given selections. platforms lists the
// enabled platform ids in generation order; each gets a build descriptor.
// The selections are copied so later changes by the caller are not observed.
func New(sel *models.ProjectSelections, platforms []string, logger *slog.Logger) *Project {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	own := sel.Clone()
	ordered := slices.Clone(platforms)
	own.Platforms = ordered

	p := &Project{
		sel:         own,
		ctx:         template.NewTemplateContext(template.WithSelections(own)),
		platforms:   ordered,
		root:        gradle.NewRoot(),
		descriptors: make(map[string]*gradle.File, len(ordered)),
		fileIndex:   make(map[string]int),
		props:       NewPropertyBag(),
		logger:      logger,
	}
	for _, id := range ordered {
		p.descriptors[id] = gradle.NewModule(id)
	}
	return p
}

// Selections returns the captured selections. Callers must treat them as read-only.
func (p *Project) Selections() *models.ProjectSelections { return p.sel }

// Context returns the template context shared by all rendered files.
func (p *Project) Context() *template.TemplateContext { return p.ctx }

// Destination returns the directory the project is written to.
func (p *Project) Destination() string { return p.sel.Basic.Destination }

// Platforms returns the enabled platform ids in generation order.
func (p *Project) Platforms() []string { return slices.Clone(p.platforms) }

// HasPlatform reports whether a platform is enabled.
func (p *Project) HasPlatform(id string) bool {
	_, ok := p.descriptors[id]
	return ok
}

// Root returns the root build descriptor.
func (p *Project) Root() *gradle.File { return p.root }

// Descriptor returns the build descriptor of an enabled platform.
// It panics for platforms that are not enabled.
func (p *Project) Descriptor(id string) *gradle.File {
	d, ok := p.descriptors[id]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownPlatform, id))
	}
	return d
}

// Descriptors returns the platform build descriptors in generation order.
func (p *Project) Descriptors() []*gradle.File {
	out := make([]*gradle.File, 0, len(p.platforms))
	for _, id := range p.platforms {
		out = append(out, p.descriptors[id])
	}
	return out
}

// AddFile queues a pending file. A file with the same destination as an
// earlier one replaces it in place.
func (p *Project) AddFile(f PendingFile) {
	dest := f.Destination()
	if i, ok := p.fileIndex[dest]; ok {
		p.logger.Debug("pending file replaced", "path", dest)
		p.files[i] = f
		return
	}
	p.fileIndex[dest] = len(p.files)
	p.files = append(p.files, f)
}

// Files returns the queued files in the order they will be saved.
func (p *Project) Files() []PendingFile { return slices.Clone(p.files) }

// Properties returns the gradle.properties bag.
func (p *Project) Properties() PropertyBag { return p.props }

// AddGwtInherit records a GWT module the html launcher must inherit.
func (p *Project) AddGwtInherit(module string) {
	if !slices.Contains(p.gwtInherits, module) {
		p.gwtInherits = append(p.gwtInherits, module)
	}
}

// GwtInherits returns the recorded GWT modules.
func (p *Project) GwtInherits() []string { return slices.Clone(p.gwtInherits) }

// Schedule queues a task to run after the project is saved.
func (p *Project) Schedule(t PostTask) {
	p.tasks = append(p.tasks, t)
}

// PostTasks returns the queued tasks in enqueue order.
func (p *Project) PostTasks() []PostTask { return slices.Clone(p.tasks) }

// RenderData is what TemplateFile templates see: the template context plus
// values only known once every stage has contributed.
type RenderData struct {
	*template.TemplateContext

	Properties  map[string]string
	GwtInherits []string
}

// RenderData snapshots the project for rendering.
func (p *Project) RenderData() RenderData {
	return RenderData{
		TemplateContext: p.ctx,
		Properties:      p.props,
		GwtInherits:     p.GwtInherits(),
	}
}
