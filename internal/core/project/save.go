package project

import (
	"fmt"

	"github.com/modu-ai/liftoff/internal/defs"
	"github.com/modu-ai/liftoff/internal/gradle"
	"github.com/modu-ai/liftoff/internal/template"
)

// Written lists what a save wrote, relative to the project root.
type Written struct {
	Dirs  []string
	Files []string
}

// WriteSettings writes settings.gradle listing every enabled platform once.
func (p *Project) WriteSettings(d template.Deployer, r template.Renderer) (string, error) {
	content, err := gradle.RenderSettings(r, p.ctx, p.platforms)
	if err != nil {
		return "", err
	}
	if err := d.Write(p.Destination(), defs.SettingsGradle, content); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return defs.SettingsGradle, nil
}

// WriteProperties writes gradle.properties from the property bag.
func (p *Project) WriteProperties(d template.Deployer) (string, error) {
	if err := d.Write(p.Destination(), defs.GradleProperties, p.props.Render()); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return defs.GradleProperties, nil
}

// Save writes the root build script, each platform build script and then
// every pending file, in that order.
func (p *Project) Save(d template.Deployer, r template.Renderer) (*Written, error) {
	root := p.Destination()
	out := &Written{}

	for _, f := range append([]*gradle.File{p.root}, p.Descriptors()...) {
		content, err := f.Render(r, p.ctx)
		if err != nil {
			return out, err
		}
		if err := d.Write(root, f.Path(), content); err != nil {
			return out, fmt.Errorf("%w: %w", ErrSaveFailed, err)
		}
		out.Files = append(out.Files, f.Path())
	}

	data := p.RenderData()
	for _, pf := range p.files {
		dest := pf.Destination()
		var err error
		switch f := pf.(type) {
		case CopiedFile:
			err = d.Copy(root, f.Source, dest, f.Origin)
		case SourceDirectory:
			if err = d.Mkdir(root, dest); err == nil {
				out.Dirs = append(out.Dirs, dest)
				continue
			}
		case TemplateFile:
			err = d.Render(root, f.Source, dest, data)
		default:
			err = fmt.Errorf("%w: %T", ErrUnknownFileKind, pf)
		}
		if err != nil {
			return out, fmt.Errorf("save %s: %w", dest, err)
		}
		out.Files = append(out.Files, dest)
		p.logger.Debug("saved", "path", dest)
	}

	return out, nil
}

// RunPostTasks runs the queued tasks in order and stops at the first failure.
// It returns the number of tasks that completed.
func (p *Project) RunPostTasks(d template.Deployer) (int, error) {
	for i, task := range p.tasks {
		var err error
		switch t := task.(type) {
		case AppendToFile:
			err = d.Append(p.Destination(), t.Path, []byte(t.Text))
		default:
			err = fmt.Errorf("%w: %T", ErrUnknownTask, task)
		}
		if err != nil {
			return i, fmt.Errorf("post task %d (%s): %w", i+1, task.Describe(), err)
		}
		p.logger.Debug("post task done", "task", task.Describe())
	}
	return len(p.tasks), nil
}
