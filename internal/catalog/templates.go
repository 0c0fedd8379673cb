package catalog

import (
	"fmt"
	"slices"

	"github.com/modu-ai/liftoff/internal/core/project"
	"github.com/modu-ai/liftoff/internal/defs"
	"github.com/modu-ai/liftoff/internal/template"
	"github.com/modu-ai/liftoff/pkg/models"
)

// Starter templates.
const (
	TemplateClassic            = "classic"
	TemplateApplicationAdapter = "application-adapter"
	TemplateEmpty              = "empty"
	TemplateGame               = "game"
	TemplateInputProcessor     = "input-processor"
	TemplateScene2D            = "scene2d"
	TemplateKotlin             = "kotlin"
)

// DefaultTemplate is used when no template is selected.
const DefaultTemplate = TemplateClassic

var templates = []Entry{
	{ID: TemplateClassic, Name: "Classic", Description: "Draws the framework logo with a SpriteBatch."},
	{ID: TemplateApplicationAdapter, Name: "ApplicationAdapter", Description: "Empty ApplicationAdapter with every lifecycle method."},
	{ID: TemplateEmpty, Name: "Empty", Description: "No starter code; only the source directories."},
	{ID: TemplateGame, Name: "Game", Description: "Game class with a first Screen."},
	{ID: TemplateInputProcessor, Name: "InputProcessor", Description: "ApplicationAdapter that handles input events."},
	{ID: TemplateScene2D, Name: "Scene2D", Description: "Stage setup for scene2d widgets."},
	{ID: TemplateKotlin, Name: "Kotlin Logo", Description: "Classic logo sample written in Kotlin."},
}

// Templates lists the starter templates.
func Templates() []Entry { return slices.Clone(templates) }

// IsTemplate reports whether id is a known starter template.
func IsTemplate(id string) bool { return contains(templates, id) }

// ApplyTemplate adds a starter template's sources and assets to the project.
// It runs after languages and extensions and before platforms.
func ApplyTemplate(p *project.Project, id string) error {
	switch id {
	case TemplateClassic:
		addMainClass(p, id, "java")
		addLogo(p)
	case TemplateApplicationAdapter, TemplateInputProcessor, TemplateScene2D:
		addMainClass(p, id, "java")
	case TemplateGame:
		addMainClass(p, id, "java")
		p.AddFile(project.TemplateFile{
			Project: models.PlatformCore,
			Path:    sourcePath(p, "java", "FirstScreen.java"),
			Source:  "starters/game/FirstScreen.java.tmpl",
		})
	case TemplateEmpty:
		p.AddFile(project.SourceDirectory{Project: models.PlatformCore, Path: sourcePath(p, "java", "")})
	case TemplateKotlin:
		if !p.Context().HasLanguage(Kotlin) {
			entry, _ := lookup(languages, Kotlin)
			p.Properties().SetDefault(VersionKey(Kotlin), p.Selections().VersionOf(Kotlin, entry.Version))
			initKotlin(p)
			if langs, ok := p.Properties().Get("jvmLanguages"); ok {
				p.Properties().Set("jvmLanguages", langs+","+Kotlin)
			}
		}
		addMainClass(p, id, "kotlin")
		addLogo(p)
	default:
		return fmt.Errorf("%w: template %q", ErrUnknownID, id)
	}
	return nil
}

func addMainClass(p *project.Project, id, lang string) {
	ext := ".java"
	if lang == Kotlin {
		ext = ".kt"
	}
	p.AddFile(project.TemplateFile{
		Project: models.PlatformCore,
		Path:    sourcePath(p, lang, p.Context().MainClass+ext),
		Source:  "starters/" + id + "/Main" + ext + ".tmpl",
	})
}

func addLogo(p *project.Project) {
	p.AddFile(project.CopiedFile{
		Project: defs.AssetsDir,
		Path:    "libgdx.png",
		Source:  "starters/classic/libgdx.png",
		Origin:  template.OriginGenerator,
	})
}
