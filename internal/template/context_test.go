package template

import (
	"testing"

	"github.com/modu-ai/liftoff/pkg/models"
	"github.com/modu-ai/liftoff/pkg/version"
)

func TestNewTemplateContextDefaults(t *testing.T) {
	ctx := NewTemplateContext()

	if ctx.MainClass != DefaultMainClass {
		t.Errorf("MainClass = %q, want %q", ctx.MainClass, DefaultMainClass)
	}
	if ctx.GdxVersion != version.GdxVersion {
		t.Errorf("GdxVersion = %q, want %q", ctx.GdxVersion, version.GdxVersion)
	}
	if ctx.JavaVersion != DefaultJavaVersion {
		t.Errorf("JavaVersion = %q, want %q", ctx.JavaVersion, DefaultJavaVersion)
	}
	if ctx.AndroidSDKVersion != DefaultAndroidSDKVersion {
		t.Errorf("AndroidSDKVersion = %d, want %d", ctx.AndroidSDKVersion, DefaultAndroidSDKVersion)
	}
	if ctx.PackagePath != "" {
		t.Errorf("PackagePath = %q, want empty", ctx.PackagePath)
	}
}

func TestWithSelections(t *testing.T) {
	sel := &models.ProjectSelections{
		Basic: models.BasicData{
			Name:        "Demo",
			RootPackage: "com.example.demo",
			MainClass:   "DemoGame",
			AndroidSDK:  "/opt/android",
		},
		Advanced: models.AdvancedData{
			GdxVersion:  "1.12.1",
			JavaVersion: "17",
		},
		Platforms: []string{"core", "android"},
		Languages: []string{"kotlin"},
	}

	ctx := NewTemplateContext(WithSelections(sel))

	if ctx.ProjectName != "Demo" {
		t.Errorf("ProjectName = %q", ctx.ProjectName)
	}
	if ctx.PackagePath != "com/example/demo" {
		t.Errorf("PackagePath = %q, want com/example/demo", ctx.PackagePath)
	}
	if ctx.MainClass != "DemoGame" {
		t.Errorf("MainClass = %q", ctx.MainClass)
	}
	if ctx.GdxVersion != "1.12.1" || ctx.JavaVersion != "17" {
		t.Errorf("versions = %q/%q", ctx.GdxVersion, ctx.JavaVersion)
	}
	if ctx.ProjectVersion != DefaultProjectVersion {
		t.Errorf("ProjectVersion = %q, want default", ctx.ProjectVersion)
	}
	if ctx.AndroidSDKPath != "/opt/android" {
		t.Errorf("AndroidSDKPath = %q", ctx.AndroidSDKPath)
	}
	if !ctx.HasPlatform("android") || ctx.HasPlatform("ios") {
		t.Error("HasPlatform mismatch")
	}
	if !ctx.HasLanguage("kotlin") {
		t.Error("HasLanguage(kotlin) = false")
	}

	// Mutating the selection must not leak into the context.
	sel.Platforms[0] = "html"
	if !ctx.HasPlatform("core") {
		t.Error("context shares platform slice with selections")
	}
}

func TestPackageToPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"com.example.game", "com/example/game"},
		{"single", "single"},
		{" io.github.x ", "io/github/x"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := PackageToPath(tt.in); got != tt.want {
			t.Errorf("PackageToPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
