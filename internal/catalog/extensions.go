package catalog

import (
	"fmt"
	"slices"

	"github.com/modu-ai/liftoff/internal/core/project"
	"github.com/modu-ai/liftoff/internal/gradle"
	"github.com/modu-ai/liftoff/pkg/models"
)

// Official extensions.
const (
	Ashley      = "ashley"
	Box2D       = "box2d"
	Box2DLights = "box2dlights"
	AI          = "ai"
	FreeType    = "freetype"
	Bullet      = "bullet"
	Controllers = "controllers"
)

// Third-party extensions.
const (
	Anim8        = "anim8"
	TextraTypist = "textratypist"
	ShapeDrawer  = "shapedrawer"
)

var extensions = []Entry{
	{ID: Ashley, Name: "Ashley", Description: "Lightweight entity-component-system.", Version: "1.7.4"},
	{ID: Box2D, Name: "Box2D", Description: "2D physics library."},
	{ID: Box2DLights, Name: "Box2DLights", Description: "2D lighting framework built on Box2D.", Version: "1.5"},
	{ID: AI, Name: "AI", Description: "Artificial intelligence framework.", Version: "1.8.2"},
	{ID: FreeType, Name: "FreeType", Description: "Scalable font support at runtime."},
	{ID: Bullet, Name: "Bullet", Description: "3D collision detection and rigid body dynamics."},
	{ID: Controllers, Name: "Controllers", Description: "Controller and gamepad input.", Version: "2.2.4"},
}

var thirdParty = []Entry{
	{ID: Anim8, Name: "anim8-gdx", Description: "Animated GIF and PNG writing.", Version: "0.5.3"},
	{ID: TextraTypist, Name: "TextraTypist", Description: "Text effects and markup for labels.", Version: "1.1.0"},
	{ID: ShapeDrawer, Name: "Shape Drawer", Description: "Draws primitive shapes with a SpriteBatch.", Version: "2.6.0"},
}

// Extensions lists the official extensions.
func Extensions() []Entry { return slices.Clone(extensions) }

// ThirdPartyExtensions lists the third-party extensions.
func ThirdPartyExtensions() []Entry { return slices.Clone(thirdParty) }

// IsExtension reports whether id is a known official extension.
func IsExtension(id string) bool { return contains(extensions, id) }

// IsThirdParty reports whether id is a known third-party extension.
func IsThirdParty(id string) bool { return contains(thirdParty, id) }

// InitiateExtension adds an official extension.
func InitiateExtension(p *project.Project, id string) error {
	entry, ok := lookup(extensions, id)
	if !ok {
		return fmt.Errorf("%w: extension %q", ErrUnknownID, id)
	}
	if entry.Version != "" {
		p.Properties().Set(VersionKey(id), p.Selections().VersionOf(id, entry.Version))
	}
	core := p.Descriptor(models.PlatformCore)

	switch id {
	case Ashley:
		lib := "com.badlogicgames.ashley:ashley:$ashleyVersion"
		core.AddDependency(gradle.API, lib)
		addGwtSources(p, lib, "com.badlogic.ashley_gwt")
	case Box2D:
		core.AddDependency(gradle.API, gdx("gdx-box2d"))
		addNatives(p, "gdx-box2d-platform")
		addGwtSources(p, gdx("gdx-box2d-gwt"), "com.badlogic.gdx.physics.box2d.box2d-gwt")
	case Box2DLights:
		lib := "com.badlogicgames.box2dlights:box2dlights:$box2dlightsVersion"
		core.AddDependency(gradle.API, lib)
		addGwtSources(p, lib, "Box2DLights")
	case AI:
		lib := "com.badlogicgames.gdx:gdx-ai:$aiVersion"
		core.AddDependency(gradle.API, lib)
		addGwtSources(p, lib, "com.badlogic.gdx.ai")
	case FreeType:
		core.AddDependency(gradle.API, gdx("gdx-freetype"))
		addNatives(p, "gdx-freetype-platform")
	case Bullet:
		core.AddDependency(gradle.API, gdx("gdx-bullet"))
		addNatives(p, "gdx-bullet-platform")
	case Controllers:
		core.AddDependency(gradle.API, "com.badlogicgames.gdx-controllers:gdx-controllers-core:$controllersVersion")
		backends := map[string]string{
			models.PlatformLwjgl3:  "desktop",
			models.PlatformAndroid: "android",
			models.PlatformIOS:     "ios",
		}
		for platform, backend := range backends {
			if p.HasPlatform(platform) {
				p.Descriptor(platform).AddDependency(gradle.API,
					"com.badlogicgames.gdx-controllers:gdx-controllers-"+backend+":$controllersVersion")
			}
		}
		addGwtSources(p, "com.badlogicgames.gdx-controllers:gdx-controllers-gwt:$controllersVersion",
			"com.badlogic.gdx.controllers.controllers-gwt")
	}
	return nil
}

// InitiateThirdParty adds a third-party extension and records its version.
func InitiateThirdParty(p *project.Project, id string) error {
	entry, ok := lookup(thirdParty, id)
	if !ok {
		return fmt.Errorf("%w: third-party extension %q", ErrUnknownID, id)
	}
	p.Properties().Set(VersionKey(id), p.Selections().VersionOf(id, entry.Version))

	var lib, module string
	switch id {
	case Anim8:
		lib, module = "com.github.tommyettinger:anim8-gdx:$anim8Version", "com.github.tommyettinger.anim8"
	case TextraTypist:
		lib, module = "com.github.tommyettinger:textratypist:$textratypistVersion", "com.github.tommyettinger.textratypist"
	case ShapeDrawer:
		lib, module = "space.earlygrey:shapedrawer:$shapedrawerVersion", "space.earlygrey.shapedrawer"
	}
	p.Descriptor(models.PlatformCore).AddDependency(gradle.API, lib)
	addGwtSources(p, lib, module)
	return nil
}
