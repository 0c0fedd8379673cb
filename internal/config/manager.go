package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/liftoff/internal/catalog"
	"github.com/modu-ai/liftoff/internal/defs"
	"github.com/modu-ai/liftoff/internal/template"
	"github.com/modu-ai/liftoff/pkg/models"
)

// Resolve builds selections from the defaults, the preset at presetPath
// (optional) and environ (nil means the process environment). The returned
// overrides carry settings that are not selections, such as the locale.
func Resolve(presetPath string, environ map[string]string) (*models.ProjectSelections, *EnvOverrides, error) {
	sel, err := LoadPreset(presetPath)
	if err != nil {
		return nil, nil, err
	}
	overrides, err := ParseEnv(environ)
	if err != nil {
		return nil, nil, err
	}
	overrides.Apply(sel)
	return sel, overrides, nil
}

// Normalize trims text fields, drops empty and duplicate ids keeping the
// first occurrence, and fills fields derived from others. Java is implied and
// removed from the language list.
func Normalize(sel *models.ProjectSelections) {
	sel.Basic.Name = strings.TrimSpace(sel.Basic.Name)
	sel.Basic.RootPackage = strings.TrimSpace(sel.Basic.RootPackage)
	sel.Basic.MainClass = strings.TrimSpace(sel.Basic.MainClass)
	sel.Basic.Destination = strings.TrimSpace(sel.Basic.Destination)
	sel.Basic.AndroidSDK = strings.TrimSpace(sel.Basic.AndroidSDK)
	sel.Template = strings.TrimSpace(sel.Template)

	if sel.Basic.MainClass == "" {
		sel.Basic.MainClass = template.DefaultMainClass
	}
	if sel.Basic.Destination == "" {
		sel.Basic.Destination = sel.Basic.Name
	}
	if sel.Template == "" {
		sel.Template = catalog.DefaultTemplate
	}

	sel.Platforms = dedupe(sel.Platforms)
	sel.Languages = dedupe(slices.DeleteFunc(sel.Languages, func(id string) bool {
		return strings.TrimSpace(id) == catalog.Java
	}))
	sel.Extensions = dedupe(sel.Extensions)
	sel.ThirdParty = dedupe(sel.ThirdParty)
	sel.Advanced.GradleTasks = dedupeKeepRepeats(sel.Advanced.GradleTasks)
}

func dedupe(ids []string) []string {
	var out []string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}

// dedupeKeepRepeats only drops empty entries: a task may run twice.
func dedupeKeepRepeats(tasks []string) []string {
	var out []string
	for _, t := range tasks {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Save writes sel as a YAML preset at path, atomically.
func Save(path string, sel *models.ProjectSelections) error {
	data, err := yaml.Marshal(sel)
	if err != nil {
		return fmt.Errorf("marshal preset: %w", err)
	}
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), defs.DirPerm); err != nil {
		return fmt.Errorf("create preset directory: %w", err)
	}
	return atomicWrite(path, data)
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".liftoff-preset-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, defs.FilePerm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	return os.Rename(tmpName, path)
}
