package catalog

import (
	"github.com/modu-ai/liftoff/internal/core/project"
	"github.com/modu-ai/liftoff/internal/gradle"
	"github.com/modu-ai/liftoff/pkg/models"
)

const gdxGroup = "com.badlogicgames.gdx:"

// gdx returns framework coordinates pinned to the shared gdxVersion property.
func gdx(artifact string) string {
	return gdxGroup + artifact + ":$gdxVersion"
}

func gdxClassifier(artifact, classifier string) string {
	return gdx(artifact) + ":" + classifier
}

func projectRef(id string) string {
	return "project(':" + id + "')"
}

var androidABIs = []string{"armeabi-v7a", "arm64-v8a", "x86", "x86_64"}

// addNatives declares the native libraries of a framework artifact on every
// enabled platform that loads them.
func addNatives(p *project.Project, artifact string) {
	for _, id := range []string{models.PlatformLwjgl3, models.PlatformHeadless} {
		if p.HasPlatform(id) {
			p.Descriptor(id).AddDependency(gradle.API, gdxClassifier(artifact, "natives-desktop"))
		}
	}
	if p.HasPlatform(models.PlatformAndroid) {
		d := p.Descriptor(models.PlatformAndroid)
		for _, abi := range androidABIs {
			d.AddDependency(gradle.Natives, gdxClassifier(artifact, "natives-"+abi))
		}
	}
	if p.HasPlatform(models.PlatformIOS) {
		p.Descriptor(models.PlatformIOS).AddDependency(gradle.API, gdxClassifier(artifact, "natives-ios"))
	}
}

// addGwtSources declares the sources jar of a library for the GWT compiler
// and records the module to inherit. Nothing happens without the html platform.
func addGwtSources(p *project.Project, notation, module string) {
	if !p.HasPlatform(models.PlatformHTML) {
		return
	}
	d := p.Descriptor(models.PlatformHTML)
	d.AddDependency(gradle.Implementation, notation)
	d.AddDependency(gradle.Implementation, notation+":sources")
	if module != "" {
		p.AddGwtInherit(module)
	}
}

// sourcePath returns path under the root package directory of a source set.
func sourcePath(p *project.Project, set, name string) string {
	dir := "src/main/" + set + "/" + p.Context().PackagePath
	if name == "" {
		return dir
	}
	return dir + "/" + name
}
