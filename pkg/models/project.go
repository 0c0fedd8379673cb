package models

import "slices"

// Well-known platform identifiers.
const (
	PlatformCore     = "core"
	PlatformLwjgl3   = "lwjgl3"
	PlatformAndroid  = "android"
	PlatformIOS      = "ios"
	PlatformHTML     = "html"
	PlatformTeaVM    = "teavm"
	PlatformHeadless = "headless"
	PlatformServer   = "server"
	PlatformShared   = "shared"
)

// BasicData holds the project metadata entered on the first wizard page.
type BasicData struct {
	Name        string `yaml:"name" json:"name"`
	RootPackage string `yaml:"package" json:"package"`
	MainClass   string `yaml:"main_class" json:"main_class"`
	Destination string `yaml:"destination" json:"destination"`
	AndroidSDK  string `yaml:"android_sdk,omitempty" json:"android_sdk,omitempty"`
}

// AdvancedData holds toolchain versions and generation switches.
type AdvancedData struct {
	GdxVersion     string `yaml:"gdx_version" json:"gdx_version"`
	ProjectVersion string `yaml:"project_version" json:"project_version"`
	JavaVersion    string `yaml:"java_version" json:"java_version"`
	// AndroidSDKVersion is kept as text; it is converted when the Android
	// platform is generated.
	AndroidSDKVersion string            `yaml:"android_sdk_version" json:"android_sdk_version"`
	Versions          map[string]string `yaml:"versions,omitempty" json:"versions,omitempty"`
	GenerateSkin      bool              `yaml:"generate_skin" json:"generate_skin"`
	AddWrapper        bool              `yaml:"gradle_wrapper" json:"gradle_wrapper"`
	GradleTasks       []string          `yaml:"gradle_tasks,omitempty" json:"gradle_tasks,omitempty"`
}

// ProjectSelections is the complete set of user choices for one generation run.
type ProjectSelections struct {
	Basic      BasicData    `yaml:"basic" json:"basic"`
	Advanced   AdvancedData `yaml:"advanced" json:"advanced"`
	Languages  []string     `yaml:"languages,omitempty" json:"languages,omitempty"`
	Extensions []string     `yaml:"extensions,omitempty" json:"extensions,omitempty"`
	ThirdParty []string     `yaml:"third_party,omitempty" json:"third_party,omitempty"`
	Template   string       `yaml:"template" json:"template"`
	Platforms  []string     `yaml:"platforms" json:"platforms"`
}

// HasPlatform reports whether the platform id is among the enabled platforms.
func (s *ProjectSelections) HasPlatform(id string) bool {
	return slices.Contains(s.Platforms, id)
}

// VersionOf returns the user override for id, or fallback when none is set.
func (s *ProjectSelections) VersionOf(id, fallback string) string {
	if v, ok := s.Advanced.Versions[id]; ok && v != "" {
		return v
	}
	return fallback
}

// Clone returns a deep copy so callers can freeze selections before generation.
func (s *ProjectSelections) Clone() *ProjectSelections {
	c := *s
	c.Languages = slices.Clone(s.Languages)
	c.Extensions = slices.Clone(s.Extensions)
	c.ThirdParty = slices.Clone(s.ThirdParty)
	c.Platforms = slices.Clone(s.Platforms)
	c.Advanced.GradleTasks = slices.Clone(s.Advanced.GradleTasks)
	if s.Advanced.Versions != nil {
		c.Advanced.Versions = make(map[string]string, len(s.Advanced.Versions))
		for k, v := range s.Advanced.Versions {
			c.Advanced.Versions[k] = v
		}
	}
	return &c
}
