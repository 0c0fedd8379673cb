package generator

import (
	"github.com/modu-ai/liftoff/internal/core/project"
	"github.com/modu-ai/liftoff/internal/defs"
	"github.com/modu-ai/liftoff/internal/template"
	"github.com/modu-ai/liftoff/pkg/models"
)

// skinPrimitives lists the raw skin images and fonts in the bundle.
// Embedded directories are not walked; the list is maintained by hand.
var skinPrimitives = []string{
	"button.png",
	"button-pressed.png",
	"check-off.png",
	"check-on.png",
	"cursor.png",
	"font.fnt",
	"font.png",
	"progressbar.png",
	"progressbar-knob.png",
	"selection.png",
	"textfield.png",
	"window.png",
}

// ClasspathFonts are copied for platforms that cannot read fonts from the
// framework jar. Paths are the same in the classpath bundle and the project.
var ClasspathFonts = []string{
	"com/badlogic/gdx/utils/lsans-15.fnt",
	"com/badlogic/gdx/utils/lsans-15.png",
}

// SkinConfig is the project path of the copied skin definition.
const SkinConfig = "ui/uiskin.json"

const texturePackerDependency = "com.badlogicgames.gdx:gdx-tools:$gdxVersion"

// packTask is appended to the root build.gradle once it is on disk.
const packTask = `
// Run the pack task to generate the skin atlas in assets/ui.
import com.badlogic.gdx.tools.texturepacker.TexturePacker
tasks.register('pack') {
  doLast {
    // If you need multiple atlases, duplicate the TexturePacker.process
    // invocation and change the paths.
    TexturePacker.process(
      'raw/ui',    // Raw assets path.
      'assets/ui', // Output directory.
      'uiskin'     // Name of the generated atlas (without extension).
    )
    copy {
      from 'raw/ui'
      include '*.fnt'
      into 'assets/ui'
    }
  }
}
`

// skin queues the UI skin sources when skin generation is enabled.
func (g *projectGenerator) skin(p *project.Project, _ *Result) error {
	if !p.Selections().Advanced.GenerateSkin {
		return nil
	}

	p.AddFile(project.SourceDirectory{Project: defs.RawDir, Path: "ui"})
	p.AddFile(project.SourceDirectory{Project: defs.AssetsDir, Path: "ui"})
	p.AddFile(project.CopiedFile{
		Project: defs.AssetsDir,
		Path:    SkinConfig,
		Source:  "skin/uiskin.json",
		Origin:  template.OriginGenerator,
	})
	for _, name := range skinPrimitives {
		p.AddFile(project.CopiedFile{
			Project: defs.RawDir,
			Path:    "ui/" + name,
			Source:  "skin/raw/" + name,
			Origin:  template.OriginGenerator,
		})
	}

	if p.HasPlatform(models.PlatformAndroid) {
		for _, font := range ClasspathFonts {
			p.AddFile(project.CopiedFile{
				Project: defs.AssetsDir,
				Path:    font,
				Source:  font,
				Origin:  template.OriginClasspath,
			})
		}
	}

	p.Root().AddBuildDependency(texturePackerDependency)
	p.Schedule(project.AppendToFile{Path: defs.BuildGradle, Text: packTask})
	return nil
}
