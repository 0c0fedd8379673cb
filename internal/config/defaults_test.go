package config

import (
	"slices"
	"testing"

	"github.com/modu-ai/liftoff/internal/catalog"
	"github.com/modu-ai/liftoff/pkg/models"
	"github.com/modu-ai/liftoff/pkg/version"
)

func TestNewDefaultSelections(t *testing.T) {
	t.Parallel()

	sel := NewDefaultSelections()

	checks := []struct {
		name, got, want string
	}{
		{"name", sel.Basic.Name, DefaultProjectName},
		{"package", sel.Basic.RootPackage, DefaultPackage},
		{"main class", sel.Basic.MainClass, "Main"},
		{"destination", sel.Basic.Destination, DefaultDestination},
		{"gdx version", sel.Advanced.GdxVersion, version.GdxVersion},
		{"java version", sel.Advanced.JavaVersion, "8"},
		{"android sdk version", sel.Advanced.AndroidSDKVersion, "35"},
		{"template", sel.Template, catalog.DefaultTemplate},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
	if !slices.Equal(sel.Platforms, []string{models.PlatformCore, models.PlatformLwjgl3}) {
		t.Errorf("platforms = %v", sel.Platforms)
	}
	if sel.Advanced.GenerateSkin || sel.Advanced.AddWrapper {
		t.Error("skin and wrapper should be off by default")
	}
}

func TestNewDefaultSelectionsIndependent(t *testing.T) {
	t.Parallel()

	a := NewDefaultSelections()
	a.Platforms[0] = "changed"
	if NewDefaultSelections().Platforms[0] != models.PlatformCore {
		t.Error("default platform list shared between calls")
	}
	if DefaultPlatforms[0] != models.PlatformCore {
		t.Error("DefaultPlatforms mutated")
	}
}
