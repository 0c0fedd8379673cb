package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRendererRender(t *testing.T) {
	t.Run("successful_render", func(t *testing.T) {
		fs := fstest.MapFS{
			"build.gradle.tmpl": &fstest.MapFile{
				Data: []byte("// {{.ProjectName}}\nversion = '{{.Version}}'\n"),
			},
		}
		r := NewRenderer(fs)

		data := map[string]string{
			"ProjectName": "Demo",
			"Version":     "1.0.0",
		}

		result, err := r.Render("build.gradle.tmpl", data)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}

		expected := "// Demo\nversion = '1.0.0'\n"
		if string(result) != expected {
			t.Errorf("Render result = %q, want %q", string(result), expected)
		}
	})

	t.Run("missing_key_strict_mode", func(t *testing.T) {
		fs := fstest.MapFS{
			"test.tmpl": &fstest.MapFile{
				Data: []byte("Hello {{.Name}}, your role is {{.Role}}"),
			},
		}
		r := NewRenderer(fs)

		_, err := r.Render("test.tmpl", map[string]string{"Name": "x"})
		if err == nil {
			t.Fatal("expected error for missing key")
		}
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
		}
	})

	t.Run("nonexistent_template", func(t *testing.T) {
		r := NewRenderer(fstest.MapFS{})

		_, err := r.Render("missing.tmpl", nil)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("parse_error", func(t *testing.T) {
		fs := fstest.MapFS{
			"bad.tmpl": &fstest.MapFile{Data: []byte("{{.Name")},
		}
		r := NewRenderer(fs)

		_, err := r.Render("bad.tmpl", map[string]string{"Name": "x"})
		if err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("unexpanded_token_in_data", func(t *testing.T) {
		fs := fstest.MapFS{
			"t.tmpl": &fstest.MapFile{Data: []byte("name={{.Name}}")},
		}
		r := NewRenderer(fs)

		_, err := r.Render("t.tmpl", map[string]string{"Name": "{{.Leak}}"})
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("expected ErrUnexpandedToken, got: %v", err)
		}
	})

	t.Run("gradle_interpolation_is_allowed", func(t *testing.T) {
		fs := fstest.MapFS{
			"t.tmpl": &fstest.MapFile{Data: []byte(`api "com.badlogicgames.gdx:gdx:$gdxVersion" // ${rootProject.name}`)},
		}
		r := NewRenderer(fs)

		out, err := r.Render("t.tmpl", nil)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(string(out), "$gdxVersion") {
			t.Errorf("output lost gradle interpolation: %q", out)
		}
	})
}

func TestRendererFuncs(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		data any
		want string
	}{
		{"posixPath", `{{posixPath .}}`, `C:\sdk\android`, "C:/sdk/android"},
		{"quoteAll", `[{{quoteAll .}}]`, []string{"core", "lwjgl3"}, "['core', 'lwjgl3']"},
		{"quoteAll_empty", `[{{quoteAll .}}]`, []string{}, "[]"},
		{"join", `{{join . ";"}}`, []string{"a", "b"}, "a;b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(fstest.MapFS{"t.tmpl": &fstest.MapFile{Data: []byte(tt.tmpl)}})
			out, err := r.Render("t.tmpl", tt.data)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			if string(out) != tt.want {
				t.Errorf("got %q, want %q", out, tt.want)
			}
		})
	}
}

func TestEmbeddedBundleRenders(t *testing.T) {
	gen, err := EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates: %v", err)
	}
	r := NewRenderer(gen)

	ctx := NewTemplateContext(
		WithProject("Demo", "com.example.demo", "Main"),
		WithPlatforms([]string{"core", "lwjgl3"}),
	)
	out, err := r.Render("gitignore.tmpl", ctx)
	if err != nil {
		t.Fatalf("Render gitignore: %v", err)
	}
	if !strings.Contains(string(out), "build/") {
		t.Errorf("gitignore missing build/ entry:\n%s", out)
	}
}
