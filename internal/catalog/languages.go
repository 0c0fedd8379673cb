package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/modu-ai/liftoff/internal/core/project"
	"github.com/modu-ai/liftoff/internal/gradle"
	"github.com/modu-ai/liftoff/pkg/models"
)

// Java is always enabled and cannot be deselected.
const Java = "java"

// Optional JVM languages.
const (
	Kotlin  = "kotlin"
	Groovy  = "groovy"
	Scala   = "scala"
	Clojure = "clojure"
)

var languages = []Entry{
	{ID: Kotlin, Name: "Kotlin", Description: "Concise JVM language with null safety.", Version: "2.1.10"},
	{ID: Groovy, Name: "Groovy", Description: "Dynamic JVM language.", Version: "4.0.24"},
	{ID: Scala, Name: "Scala", Description: "Functional and object-oriented JVM language.", Version: "2.13.15"},
	{ID: Clojure, Name: "Clojure", Description: "Lisp dialect for the JVM.", Version: "1.12.0"},
}

const clojurephantVersion = "0.8.0-beta.7"

// Languages lists the optional JVM languages.
func Languages() []Entry { return slices.Clone(languages) }

// IsLanguage reports whether id is a known optional language.
func IsLanguage(id string) bool { return contains(languages, id) }

// VersionKey returns the gradle.properties key holding the version of id.
func VersionKey(id string) string {
	return id + "Version"
}

// InitiateJava records the Java version. It runs for every project.
func InitiateJava(p *project.Project) {
	p.Properties().Set(VersionKey(Java), p.Context().JavaVersion)
}

// InitiateLanguage adds support for an optional language and records its version.
func InitiateLanguage(p *project.Project, id string) error {
	entry, ok := lookup(languages, id)
	if !ok {
		return fmt.Errorf("%w: language %q", ErrUnknownID, id)
	}
	p.Properties().Set(VersionKey(id), p.Selections().VersionOf(id, entry.Version))

	switch id {
	case Kotlin:
		initKotlin(p)
	case Groovy:
		initJVMLanguage(p, Groovy, "groovy", "org.apache.groovy:groovy:$groovyVersion")
	case Scala:
		initJVMLanguage(p, Scala, "scala", "org.scala-lang:scala-library:$scalaVersion")
	case Clojure:
		p.Root().AddBuildDependency("dev.clojurephant:clojurephant-plugin:" + clojurephantVersion)
		initJVMLanguage(p, Clojure, "dev.clojurephant.clojure", "org.clojure:clojure:$clojureVersion")
	}
	return nil
}

// AggregateLanguages records the combined list of JVM languages, Java first.
func AggregateLanguages(p *project.Project, enabled []string) {
	all := append([]string{Java}, enabled...)
	p.Properties().Set("jvmLanguages", strings.Join(all, ","))
}

func initJVMLanguage(p *project.Project, id, plugin, stdlib string) {
	core := p.Descriptor(models.PlatformCore)
	core.AddPlugin(plugin)
	core.AddDependency(gradle.API, stdlib)
	p.AddFile(project.SourceDirectory{Project: models.PlatformCore, Path: sourcePath(p, id, "")})
}

// initKotlin applies the Kotlin plugin to every JVM module. GWT cannot compile
// Kotlin, so the html module is left alone.
func initKotlin(p *project.Project) {
	p.Root().AddBuildDependency("org.jetbrains.kotlin:kotlin-gradle-plugin:$kotlinVersion")
	for _, id := range p.Platforms() {
		switch id {
		case models.PlatformHTML:
			continue
		case models.PlatformAndroid:
			p.Descriptor(id).AddPlugin("kotlin-android")
		default:
			p.Descriptor(id).AddPlugin("kotlin")
		}
	}
	p.Descriptor(models.PlatformCore).AddDependency(gradle.API, "org.jetbrains.kotlin:kotlin-stdlib:$kotlinVersion")
	p.AddFile(project.SourceDirectory{Project: models.PlatformCore, Path: sourcePath(p, Kotlin, "")})
}
