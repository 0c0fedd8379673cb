package config

import (
	"strconv"

	"github.com/modu-ai/liftoff/internal/catalog"
	"github.com/modu-ai/liftoff/internal/template"
	"github.com/modu-ai/liftoff/pkg/models"
	"github.com/modu-ai/liftoff/pkg/version"
)

// Default selection values.
const (
	DefaultProjectName = "my-game"
	DefaultPackage     = "com.example.mygame"
	DefaultDestination = "my-game"
)

// DefaultPlatforms are enabled when nothing else is selected.
var DefaultPlatforms = []string{models.PlatformCore, models.PlatformLwjgl3}

// NewDefaultSelections returns selections that generate a desktop project
// from the classic template.
func NewDefaultSelections() *models.ProjectSelections {
	return &models.ProjectSelections{
		Basic: models.BasicData{
			Name:        DefaultProjectName,
			RootPackage: DefaultPackage,
			MainClass:   template.DefaultMainClass,
			Destination: DefaultDestination,
		},
		Advanced: models.AdvancedData{
			GdxVersion:        version.GdxVersion,
			ProjectVersion:    template.DefaultProjectVersion,
			JavaVersion:       template.DefaultJavaVersion,
			AndroidSDKVersion: strconv.Itoa(template.DefaultAndroidSDKVersion),
		},
		Template:  catalog.DefaultTemplate,
		Platforms: append([]string(nil), DefaultPlatforms...),
	}
}
