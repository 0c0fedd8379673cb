package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/modu-ai/liftoff/internal/gradle"
	"github.com/modu-ai/liftoff/internal/template"
	"github.com/modu-ai/liftoff/pkg/models"
)

func testSelections(dest string) *models.ProjectSelections {
	return &models.ProjectSelections{
		Basic: models.BasicData{
			Name:        "Demo",
			RootPackage: "com.example.demo",
			MainClass:   "Main",
			Destination: dest,
		},
		Platforms: []string{"core", "lwjgl3"},
	}
}

func testBundle() fstest.MapFS {
	module := "{{range .File.Dependencies}}{{.Declaration}}\n{{end}}"
	return fstest.MapFS{
		"gradle/root.gradle.tmpl":     &fstest.MapFile{Data: []byte("// root {{.Project.ProjectName}}\n")},
		"gradle/core.gradle.tmpl":     &fstest.MapFile{Data: []byte(module)},
		"gradle/lwjgl3.gradle.tmpl":   &fstest.MapFile{Data: []byte(module)},
		"gradle/settings.gradle.tmpl": &fstest.MapFile{Data: []byte("include {{quoteAll .Includes}}\n")},
		"a.txt":                       &fstest.MapFile{Data: []byte("first")},
		"b.txt":                       &fstest.MapFile{Data: []byte("second")},
		"Main.java.tmpl":              &fstest.MapFile{Data: []byte("package {{.RootPackage}}; // {{index .Properties \"gdxVersion\"}}\n")},
	}
}

func newTestIO(t *testing.T) (template.Deployer, template.Renderer) {
	t.Helper()
	fs := testBundle()
	r := template.NewRenderer(fs)
	return template.NewDeployer(fs, fstest.MapFS{}, r), r
}

func TestNewCreatesDescriptorPerPlatform(t *testing.T) {
	p := New(testSelections(t.TempDir()), []string{"core", "lwjgl3"}, nil)

	if !p.HasPlatform("core") || !p.HasPlatform("lwjgl3") || p.HasPlatform("android") {
		t.Error("HasPlatform mismatch")
	}
	descs := p.Descriptors()
	if len(descs) != 2 || descs[0].Kind != "core" || descs[1].Kind != "lwjgl3" {
		t.Errorf("Descriptors order = %v", descs)
	}
	if p.Root().Kind != gradle.RootKind {
		t.Errorf("Root kind = %q", p.Root().Kind)
	}
	if p.Context().PackagePath != "com/example/demo" {
		t.Errorf("PackagePath = %q", p.Context().PackagePath)
	}
}

func TestDescriptorPanicsOnUnknownPlatform(t *testing.T) {
	p := New(testSelections(t.TempDir()), []string{"core"}, nil)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownPlatform) {
			t.Errorf("panic value = %v, want ErrUnknownPlatform", r)
		}
	}()
	p.Descriptor("android")
}

func TestSelectionsAreFrozen(t *testing.T) {
	sel := testSelections(t.TempDir())
	p := New(sel, sel.Platforms, nil)

	sel.Basic.Name = "Changed"
	sel.Platforms = append(sel.Platforms, "android")

	if p.Selections().Basic.Name != "Demo" {
		t.Error("project observed caller mutation of Basic")
	}
	if p.HasPlatform("android") {
		t.Error("project observed caller mutation of Platforms")
	}
}

func TestAddFileLastWriteWins(t *testing.T) {
	p := New(testSelections(t.TempDir()), []string{"core"}, nil)

	p.AddFile(CopiedFile{Project: "assets", Path: "x.txt", Source: "a.txt"})
	p.AddFile(SourceDirectory{Project: "core", Path: "src/main/java"})
	p.AddFile(CopiedFile{Project: "assets", Path: "x.txt", Source: "b.txt"})

	files := p.Files()
	if len(files) != 2 {
		t.Fatalf("Files = %d entries, want 2", len(files))
	}
	cf, ok := files[0].(CopiedFile)
	if !ok || cf.Source != "b.txt" {
		t.Errorf("files[0] = %#v, want replacement in place", files[0])
	}
}

func TestDestination(t *testing.T) {
	tests := []struct {
		file PendingFile
		want string
	}{
		{CopiedFile{Project: "", Path: ".gitignore"}, ".gitignore"},
		{SourceDirectory{Project: "assets"}, "assets"},
		{TemplateFile{Project: "core", Path: "src/main/java/Main.java"}, "core/src/main/java/Main.java"},
	}
	for _, tt := range tests {
		if got := tt.file.Destination(); got != tt.want {
			t.Errorf("Destination() = %q, want %q", got, tt.want)
		}
	}
}

func TestPropertyBag(t *testing.T) {
	b := NewPropertyBag()
	if v, _ := b.Get("org.gradle.daemon"); v != "true" {
		t.Errorf("daemon default = %q", v)
	}

	b.Set("gdxVersion", "1.0")
	b.Set("gdxVersion", "1.1")
	b.SetDefault("gdxVersion", "9.9")
	b.SetDefault("kotlinVersion", "2.0")

	if v, _ := b.Get("gdxVersion"); v != "1.1" {
		t.Errorf("gdxVersion = %q, want last write", v)
	}
	if v, _ := b.Get("kotlinVersion"); v != "2.0" {
		t.Errorf("kotlinVersion = %q", v)
	}

	lines := strings.Split(strings.TrimSpace(string(b.Render())), "\n")
	if lines[0] != "gdxVersion=1.1" || lines[1] != "kotlinVersion=2.0" {
		t.Errorf("Render not sorted: %v", lines)
	}
	if len(lines) != 5 {
		t.Errorf("Render lines = %d, want 5", len(lines))
	}

	// The seed must not be shared between bags.
	if _, ok := NewPropertyBag().Get("gdxVersion"); ok {
		t.Error("defaults were mutated")
	}
}

func TestSaveWritesEverythingOnce(t *testing.T) {
	dest := t.TempDir()
	d, r := newTestIO(t)
	p := New(testSelections(dest), []string{"core", "lwjgl3"}, nil)

	p.Descriptor("core").AddDependency(gradle.API, "com.badlogicgames.gdx:gdx:$gdxVersion")
	p.Properties().Set("gdxVersion", "1.13.1")
	p.AddFile(SourceDirectory{Project: "assets"})
	p.AddFile(CopiedFile{Project: "assets", Path: "dup.txt", Source: "a.txt"})
	p.AddFile(TemplateFile{Project: "core", Path: "src/main/java/com/example/demo/Main.java", Source: "Main.java.tmpl"})
	p.AddFile(CopiedFile{Project: "assets", Path: "dup.txt", Source: "b.txt"})

	written, err := p.Save(d, r)
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	wantFiles := []string{
		"build.gradle",
		"core/build.gradle",
		"lwjgl3/build.gradle",
		"assets/dup.txt",
		"core/src/main/java/com/example/demo/Main.java",
	}
	if strings.Join(written.Files, ",") != strings.Join(wantFiles, ",") {
		t.Errorf("Files = %v, want %v", written.Files, wantFiles)
	}
	if len(written.Dirs) != 1 || written.Dirs[0] != "assets" {
		t.Errorf("Dirs = %v", written.Dirs)
	}

	dup, _ := os.ReadFile(filepath.Join(dest, "assets", "dup.txt"))
	if string(dup) != "second" {
		t.Errorf("dup.txt = %q, want last write", dup)
	}
	main, _ := os.ReadFile(filepath.Join(dest, "core", "src", "main", "java", "com", "example", "demo", "Main.java"))
	if string(main) != "package com.example.demo; // 1.13.1\n" {
		t.Errorf("Main.java = %q", main)
	}
	core, _ := os.ReadFile(filepath.Join(dest, "core", "build.gradle"))
	if !strings.Contains(string(core), `api "com.badlogicgames.gdx:gdx:$gdxVersion"`) {
		t.Errorf("core/build.gradle = %q", core)
	}
}

func TestSaveStopsOnMissingSource(t *testing.T) {
	d, r := newTestIO(t)
	p := New(testSelections(t.TempDir()), []string{"core"}, nil)
	p.AddFile(CopiedFile{Path: "missing.txt", Source: "missing.txt"})

	_, err := p.Save(d, r)
	if !errors.Is(err, template.ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestWriteSettingsAndProperties(t *testing.T) {
	dest := t.TempDir()
	d, r := newTestIO(t)
	p := New(testSelections(dest), []string{"core", "lwjgl3"}, nil)

	if _, err := p.WriteSettings(d, r); err != nil {
		t.Fatalf("WriteSettings: %v", err)
	}
	settings, _ := os.ReadFile(filepath.Join(dest, "settings.gradle"))
	if string(settings) != "include 'core', 'lwjgl3'\n" {
		t.Errorf("settings.gradle = %q", settings)
	}

	p.Properties().Set("gdxVersion", "1.13.1")
	if _, err := p.WriteProperties(d); err != nil {
		t.Fatalf("WriteProperties: %v", err)
	}
	props, _ := os.ReadFile(filepath.Join(dest, "gradle.properties"))
	if !strings.Contains(string(props), "gdxVersion=1.13.1\n") {
		t.Errorf("gradle.properties = %q", props)
	}
}

func TestRunPostTasks(t *testing.T) {
	dest := t.TempDir()
	d, _ := newTestIO(t)
	p := New(testSelections(dest), []string{"core"}, nil)

	if err := os.WriteFile(filepath.Join(dest, "build.gradle"), []byte("root\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p.Schedule(AppendToFile{Path: "build.gradle", Text: "one\n"})
	p.Schedule(AppendToFile{Path: "build.gradle", Text: "two\n"})

	n, err := p.RunPostTasks(d)
	if err != nil {
		t.Fatalf("RunPostTasks: %v", err)
	}
	if n != 2 {
		t.Errorf("ran %d tasks, want 2", n)
	}
	got, _ := os.ReadFile(filepath.Join(dest, "build.gradle"))
	if string(got) != "root\none\ntwo\n" {
		t.Errorf("build.gradle = %q, want tasks in order", got)
	}
}

func TestRunPostTasksStopsAtFailure(t *testing.T) {
	dest := t.TempDir()
	d, _ := newTestIO(t)
	p := New(testSelections(dest), []string{"core"}, nil)

	p.Schedule(AppendToFile{Path: "missing.gradle", Text: "x"})
	p.Schedule(AppendToFile{Path: "also-missing.gradle", Text: "y"})

	n, err := p.RunPostTasks(d)
	if err == nil {
		t.Fatal("expected error")
	}
	if n != 0 {
		t.Errorf("completed = %d, want 0", n)
	}
}

func TestGwtInherits(t *testing.T) {
	p := New(testSelections(t.TempDir()), []string{"core", "html"}, nil)
	p.AddGwtInherit("com.badlogic.gdx.ai")
	p.AddGwtInherit("com.badlogic.gdx.ai")
	p.AddGwtInherit("Box2DLights")

	got := p.GwtInherits()
	if len(got) != 2 || got[0] != "com.badlogic.gdx.ai" {
		t.Errorf("GwtInherits = %v", got)
	}
	if len(p.RenderData().GwtInherits) != 2 {
		t.Error("RenderData missing inherits")
	}
}
