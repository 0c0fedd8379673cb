package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/modu-ai/liftoff/pkg/models"
)

// EnvOverrides holds the LIFTOFF_* environment variables. Unset variables
// leave the corresponding field nil.
type EnvOverrides struct {
	Name              *string  `env:"LIFTOFF_NAME"`
	Package           *string  `env:"LIFTOFF_PACKAGE"`
	MainClass         *string  `env:"LIFTOFF_MAIN_CLASS"`
	Destination       *string  `env:"LIFTOFF_DESTINATION"`
	AndroidSDK        *string  `env:"LIFTOFF_ANDROID_SDK"`
	GdxVersion        *string  `env:"LIFTOFF_GDX_VERSION"`
	ProjectVersion    *string  `env:"LIFTOFF_PROJECT_VERSION"`
	JavaVersion       *string  `env:"LIFTOFF_JAVA_VERSION"`
	AndroidSDKVersion *string  `env:"LIFTOFF_ANDROID_SDK_VERSION"`
	Platforms         []string `env:"LIFTOFF_PLATFORMS" envSeparator:","`
	Languages         []string `env:"LIFTOFF_LANGUAGES" envSeparator:","`
	Extensions        []string `env:"LIFTOFF_EXTENSIONS" envSeparator:","`
	ThirdParty        []string `env:"LIFTOFF_THIRD_PARTY" envSeparator:","`
	Template          *string  `env:"LIFTOFF_TEMPLATE"`
	Skin              *bool    `env:"LIFTOFF_SKIN"`
	Wrapper           *bool    `env:"LIFTOFF_WRAPPER"`
	GradleTasks       []string `env:"LIFTOFF_GRADLE_TASKS" envSeparator:" "`

	// Locale selects the language of user-facing messages.
	Locale string `env:"LIFTOFF_LOCALE"`
}

// ParseEnv reads overrides from environ, or from the process environment
// when environ is nil.
func ParseEnv(environ map[string]string) (*EnvOverrides, error) {
	var o EnvOverrides
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnv, err)
	}
	return &o, nil
}

// Apply writes every set override into sel.
func (o *EnvOverrides) Apply(sel *models.ProjectSelections) {
	setString(&sel.Basic.Name, o.Name)
	setString(&sel.Basic.RootPackage, o.Package)
	setString(&sel.Basic.MainClass, o.MainClass)
	setString(&sel.Basic.Destination, o.Destination)
	setString(&sel.Basic.AndroidSDK, o.AndroidSDK)
	setString(&sel.Advanced.GdxVersion, o.GdxVersion)
	setString(&sel.Advanced.ProjectVersion, o.ProjectVersion)
	setString(&sel.Advanced.JavaVersion, o.JavaVersion)
	setString(&sel.Advanced.AndroidSDKVersion, o.AndroidSDKVersion)
	setString(&sel.Template, o.Template)
	setList(&sel.Platforms, o.Platforms)
	setList(&sel.Languages, o.Languages)
	setList(&sel.Extensions, o.Extensions)
	setList(&sel.ThirdParty, o.ThirdParty)
	setList(&sel.Advanced.GradleTasks, o.GradleTasks)
	if o.Skin != nil {
		sel.Advanced.GenerateSkin = *o.Skin
	}
	if o.Wrapper != nil {
		sel.Advanced.AddWrapper = *o.Wrapper
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setList(dst *[]string, v []string) {
	if v != nil {
		*dst = append([]string(nil), v...)
	}
}
