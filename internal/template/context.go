package template

import (
	"slices"
	"strings"

	"github.com/modu-ai/liftoff/pkg/models"
	"github.com/modu-ai/liftoff/pkg/version"
)

// Default values used when a selection leaves a field empty.
const (
	DefaultMainClass         = "Main"
	DefaultJavaVersion       = "8"
	DefaultProjectVersion    = "1.0.0"
	DefaultAndroidSDKVersion = 35
)

// TemplateContext provides data for template rendering during project generation.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	// Project
	ProjectName string
	RootPackage string // e.g. "com.example.game"
	PackagePath string // e.g. "com/example/game"
	MainClass   string

	// Versions
	GdxVersion        string
	ProjectVersion    string
	JavaVersion       string
	AndroidSDKVersion int // Set by the Android platform once the selection is parsed.
	AndroidSDKPath    string

	// Enabled modules
	Platforms []string
	Languages []string

	// Meta
	Version string // liftoff version that generated the project
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext with sensible defaults,
// then applies any provided options.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{
		MainClass:         DefaultMainClass,
		GdxVersion:        version.GdxVersion,
		ProjectVersion:    DefaultProjectVersion,
		JavaVersion:       DefaultJavaVersion,
		AndroidSDKVersion: DefaultAndroidSDKVersion,
		Version:           version.GetVersion(),
	}

	for _, opt := range opts {
		opt(ctx)
	}

	ctx.PackagePath = PackageToPath(ctx.RootPackage)
	return ctx
}

// WithProject sets the project name, root package and main class.
func WithProject(name, rootPackage, mainClass string) ContextOption {
	return func(c *TemplateContext) {
		c.ProjectName = name
		c.RootPackage = rootPackage
		if mainClass != "" {
			c.MainClass = mainClass
		}
	}
}

// WithVersions sets framework, project and Java versions. Empty values keep defaults.
func WithVersions(gdx, project, java string) ContextOption {
	return func(c *TemplateContext) {
		if gdx != "" {
			c.GdxVersion = gdx
		}
		if project != "" {
			c.ProjectVersion = project
		}
		if java != "" {
			c.JavaVersion = java
		}
	}
}

// WithPlatforms sets the enabled platform ids.
func WithPlatforms(ids []string) ContextOption {
	return func(c *TemplateContext) {
		c.Platforms = slices.Clone(ids)
	}
}

// WithLanguages sets the enabled JVM language ids.
func WithLanguages(ids []string) ContextOption {
	return func(c *TemplateContext) {
		c.Languages = slices.Clone(ids)
	}
}

// WithAndroidSDKPath sets the local Android SDK location written to local.properties.
func WithAndroidSDKPath(path string) ContextOption {
	return func(c *TemplateContext) {
		c.AndroidSDKPath = path
	}
}

// WithVersion sets the generator version.
func WithVersion(v string) ContextOption {
	return func(c *TemplateContext) {
		c.Version = v
	}
}

// WithSelections applies every option derived from the user's selections.
func WithSelections(sel *models.ProjectSelections) ContextOption {
	return func(c *TemplateContext) {
		WithProject(sel.Basic.Name, sel.Basic.RootPackage, sel.Basic.MainClass)(c)
		WithVersions(sel.Advanced.GdxVersion, sel.Advanced.ProjectVersion, sel.Advanced.JavaVersion)(c)
		WithPlatforms(sel.Platforms)(c)
		WithLanguages(sel.Languages)(c)
		WithAndroidSDKPath(sel.Basic.AndroidSDK)(c)
	}
}

// HasPlatform reports whether a platform is enabled. Usable from templates.
func (c *TemplateContext) HasPlatform(id string) bool {
	return slices.Contains(c.Platforms, id)
}

// HasLanguage reports whether a JVM language add-on is enabled.
func (c *TemplateContext) HasLanguage(id string) bool {
	return slices.Contains(c.Languages, id)
}

// PackageToPath converts a dotted Java package to a slash-separated directory path.
func PackageToPath(pkg string) string {
	return strings.ReplaceAll(strings.TrimSpace(pkg), ".", "/")
}
