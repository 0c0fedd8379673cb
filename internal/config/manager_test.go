package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/modu-ai/liftoff/pkg/models"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return path
}

func TestLoadPresetEmptyPath(t *testing.T) {
	t.Parallel()

	sel, err := LoadPreset("")
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if sel.Basic.Name != DefaultProjectName {
		t.Errorf("name = %q, want default", sel.Basic.Name)
	}
}

func TestLoadPresetOverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := writePreset(t, `
basic:
  name: dungeon
  package: io.github.dungeon
advanced:
  generate_skin: true
  gradle_tasks: [clean, build]
platforms: [core, android]
languages: [kotlin]
template: game
`)

	sel, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if sel.Basic.Name != "dungeon" || sel.Basic.RootPackage != "io.github.dungeon" {
		t.Errorf("basic = %+v", sel.Basic)
	}
	if sel.Basic.MainClass != "Main" {
		t.Errorf("main class = %q, want default kept", sel.Basic.MainClass)
	}
	if sel.Advanced.GdxVersion == "" || sel.Advanced.JavaVersion != "8" {
		t.Errorf("advanced defaults lost: %+v", sel.Advanced)
	}
	if !sel.Advanced.GenerateSkin {
		t.Error("generate_skin not loaded")
	}
	if !slices.Equal(sel.Advanced.GradleTasks, []string{"clean", "build"}) {
		t.Errorf("tasks = %v", sel.Advanced.GradleTasks)
	}
	if !slices.Equal(sel.Platforms, []string{models.PlatformCore, models.PlatformAndroid}) {
		t.Errorf("platforms = %v", sel.Platforms)
	}
	if sel.Template != "game" {
		t.Errorf("template = %q", sel.Template)
	}
}

func TestLoadPresetErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   func(t *testing.T) string
		target error
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }, ErrPresetNotFound},
		{"invalid yaml", func(t *testing.T) string { return writePreset(t, "basic: [unclosed") }, ErrInvalidYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadPreset(tt.path(t))
			if !errors.Is(err, tt.target) {
				t.Errorf("LoadPreset error = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	sel := NewDefaultSelections()
	sel.Basic.Name = "roundtrip"
	sel.Languages = []string{"kotlin", "scala"}
	sel.Advanced.Versions = map[string]string{"kotlin": "2.0.0"}
	sel.Advanced.AddWrapper = true

	path := filepath.Join(t.TempDir(), "nested", "liftoff.yaml")
	if err := Save(path, sel); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat preset: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("mode = %v, want 0644", info.Mode().Perm())
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}

	loaded, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if loaded.Basic.Name != "roundtrip" || !loaded.Advanced.AddWrapper {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.VersionOf("kotlin", "") != "2.0.0" {
		t.Errorf("kotlin version = %q", loaded.VersionOf("kotlin", ""))
	}
	if !slices.Equal(loaded.Languages, sel.Languages) {
		t.Errorf("languages = %v", loaded.Languages)
	}
}

func TestResolvePrecedence(t *testing.T) {
	t.Parallel()

	path := writePreset(t, "basic:\n  name: from-preset\n  package: com.preset\ntemplate: game\n")
	sel, overrides, err := Resolve(path, map[string]string{
		"LIFTOFF_NAME":   "from-env",
		"LIFTOFF_LOCALE": "ko",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if sel.Basic.Name != "from-env" {
		t.Errorf("name = %q, want env to win over preset", sel.Basic.Name)
	}
	if sel.Basic.RootPackage != "com.preset" || sel.Template != "game" {
		t.Errorf("preset values lost: %+v", sel)
	}
	if overrides.Locale != "ko" {
		t.Errorf("locale = %q", overrides.Locale)
	}
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	if _, _, err := Resolve(filepath.Join(t.TempDir(), "missing.yaml"), map[string]string{}); !errors.Is(err, ErrPresetNotFound) {
		t.Errorf("missing preset error = %v", err)
	}
	if _, _, err := Resolve("", map[string]string{"LIFTOFF_SKIN": "maybe"}); !errors.Is(err, ErrInvalidEnv) {
		t.Errorf("bad env error = %v", err)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	sel := &models.ProjectSelections{
		Basic:      models.BasicData{Name: "  space-game ", RootPackage: " com.space "},
		Platforms:  []string{"core", "lwjgl3", "core", " ", "android"},
		Languages:  []string{"java", "kotlin", "kotlin"},
		Extensions: []string{"ashley", "", "ashley"},
		ThirdParty: []string{"anim8", "anim8"},
		Advanced:   models.AdvancedData{GradleTasks: []string{"clean", " ", "build", "clean"}},
	}
	Normalize(sel)

	if sel.Basic.Name != "space-game" || sel.Basic.RootPackage != "com.space" {
		t.Errorf("basic not trimmed: %+v", sel.Basic)
	}
	if sel.Basic.Destination != "space-game" {
		t.Errorf("destination = %q, want name", sel.Basic.Destination)
	}
	if sel.Basic.MainClass != "Main" || sel.Template != "classic" {
		t.Errorf("defaults not filled: main=%q template=%q", sel.Basic.MainClass, sel.Template)
	}

	lists := []struct {
		name      string
		got, want []string
	}{
		{"platforms", sel.Platforms, []string{"core", "lwjgl3", "android"}},
		{"languages", sel.Languages, []string{"kotlin"}},
		{"extensions", sel.Extensions, []string{"ashley"}},
		{"third party", sel.ThirdParty, []string{"anim8"}},
		{"tasks", sel.Advanced.GradleTasks, []string{"clean", "build", "clean"}},
	}
	for _, l := range lists {
		if !slices.Equal(l.got, l.want) {
			t.Errorf("%s = %v, want %v", l.name, l.got, l.want)
		}
	}
}
