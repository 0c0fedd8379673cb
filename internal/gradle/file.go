package gradle

import (
	"fmt"
	"slices"
	"strings"

	"github.com/modu-ai/liftoff/internal/defs"
	"github.com/modu-ai/liftoff/internal/template"
)

// RootKind is the kind of the root build script.
const RootKind = "root"

// Common dependency configurations.
const (
	API            = "api"
	Implementation = "implementation"
	Natives        = "natives"
)

// Dependency is a single entry of a dependencies block.
type Dependency struct {
	Configuration string
	Notation      string
}

// Declaration renders the dependency as a line of Gradle script.
// Project and file references are emitted as expressions, coordinates are quoted.
func (d Dependency) Declaration() string {
	if strings.HasPrefix(d.Notation, "project(") || strings.HasPrefix(d.Notation, "files(") {
		return d.Configuration + " " + d.Notation
	}
	return fmt.Sprintf("%s %q", d.Configuration, d.Notation)
}

// File is one build.gradle: the root script or a platform sub-project script.
// All collections keep insertion order and ignore duplicates.
type File struct {
	Kind string

	Plugins           []string
	BuildDependencies []string
	Dependencies      []Dependency
	Lines             []string
}

// NewRoot creates the root build script.
func NewRoot() *File {
	return &File{Kind: RootKind}
}

// NewModule creates the build script of a platform sub-project.
func NewModule(platform string) *File {
	return &File{Kind: platform}
}

// IsRoot reports whether f is the root build script.
func (f *File) IsRoot() bool {
	return f.Kind == RootKind
}

// Path returns the build script location relative to the project root.
func (f *File) Path() string {
	if f.IsRoot() {
		return defs.BuildGradle
	}
	return f.Kind + "/" + defs.BuildGradle
}

// AddPlugin applies a plugin by id.
func (f *File) AddPlugin(id string) {
	if !slices.Contains(f.Plugins, id) {
		f.Plugins = append(f.Plugins, id)
	}
}

// AddBuildDependency adds a buildscript classpath entry.
// Only meaningful on the root script.
func (f *File) AddBuildDependency(notation string) {
	if !slices.Contains(f.BuildDependencies, notation) {
		f.BuildDependencies = append(f.BuildDependencies, notation)
	}
}

// AddDependency declares a dependency in the given configuration.
func (f *File) AddDependency(configuration, notation string) {
	dep := Dependency{Configuration: configuration, Notation: notation}
	if !slices.Contains(f.Dependencies, dep) {
		f.Dependencies = append(f.Dependencies, dep)
	}
}

// AddLine appends a raw line of script after the generated blocks.
func (f *File) AddLine(line string) {
	if !slices.Contains(f.Lines, line) {
		f.Lines = append(f.Lines, line)
	}
}

// HasDependency reports whether notation is declared in any configuration.
func (f *File) HasDependency(notation string) bool {
	return slices.ContainsFunc(f.Dependencies, func(d Dependency) bool {
		return d.Notation == notation
	})
}

// View is the data handed to build script templates.
type View struct {
	File    *File
	Project *template.TemplateContext
}

// TemplateName returns the bundle template used to render f.
func (f *File) TemplateName() string {
	return "gradle/" + f.Kind + ".gradle.tmpl"
}

// Render produces the script text using the strict renderer.
func (f *File) Render(r template.Renderer, ctx *template.TemplateContext) ([]byte, error) {
	out, err := r.Render(f.TemplateName(), View{File: f, Project: ctx})
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", f.Path(), err)
	}
	return out, nil
}

// Settings is the data handed to the settings.gradle template.
type Settings struct {
	Project  *template.TemplateContext
	Includes []string
}

// SettingsTemplate is the bundle template for settings.gradle.
const SettingsTemplate = "gradle/settings.gradle.tmpl"

// RenderSettings renders settings.gradle including exactly the given ids once each.
func RenderSettings(r template.Renderer, ctx *template.TemplateContext, ids []string) ([]byte, error) {
	includes := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(includes, id) {
			includes = append(includes, id)
		}
	}
	out, err := r.Render(SettingsTemplate, Settings{Project: ctx, Includes: includes})
	if err != nil {
		return nil, fmt.Errorf("render settings.gradle: %w", err)
	}
	return out, nil
}
