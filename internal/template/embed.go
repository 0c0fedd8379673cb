package template

import (
	"embed"
	"fmt"
	"io/fs"
)

// bundle holds every resource shipped inside the binary. The generator tree
// carries templates and copied assets; the classpath tree mirrors files that
// the framework normally loads from its own jars.
//
//go:embed all:templates
var bundle embed.FS

const (
	generatorRoot = "templates/generator"
	classpathRoot = "templates/classpath"
)

// EmbeddedTemplates returns the generator bundle rooted at its top directory.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(bundle, generatorRoot)
	if err != nil {
		return nil, fmt.Errorf("open generator bundle: %w", err)
	}
	return sub, nil
}

// EmbeddedClasspath returns the classpath bundle rooted at its top directory.
func EmbeddedClasspath() (fs.FS, error) {
	sub, err := fs.Sub(bundle, classpathRoot)
	if err != nil {
		return nil, fmt.Errorf("open classpath bundle: %w", err)
	}
	return sub, nil
}
