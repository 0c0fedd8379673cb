package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/liftoff/internal/cli/wizard"
	"github.com/modu-ai/liftoff/internal/config"
	"github.com/modu-ai/liftoff/internal/core/generator"
	"github.com/modu-ai/liftoff/internal/ui"
	"github.com/modu-ai/liftoff/pkg/models"
)

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Generate a new game project",
		Long: `Generate a new multi-platform game project.

Selections are resolved in this order, later sources winning:
compiled defaults, the --preset file, LIFTOFF_* environment variables,
command-line flags, and finally the interactive wizard when a terminal is
attached and --non-interactive is not set.

Examples:
  liftoff new dungeon                       Desktop project in ./dungeon
  liftoff new dungeon -p io.github.dungeon --platforms core,lwjgl3,android
  liftoff new --preset game.yaml --non-interactive
  liftoff new dungeon --wrapper --tasks build`,
		Args: cobra.MaximumNArgs(1),
		RunE: runNew,
	}

	f := cmd.Flags()
	f.StringP("name", "n", "", "Project name")
	f.StringP("package", "p", "", "Root Java package, such as com.example.game")
	f.String("main-class", "", "Main application class name")
	f.StringP("destination", "d", "", "Output directory (default: the project name)")
	f.String("android-sdk", "", "Android SDK path written to local.properties")
	f.String("gdx-version", "", "libGDX version")
	f.String("project-version", "", "Version of the generated project")
	f.String("java-version", "", "Java source and target compatibility")
	f.String("android-sdk-version", "", "Android compile and target SDK version")
	f.StringSlice("platforms", nil, "Platforms to generate; core is required (see 'liftoff list')")
	f.StringSlice("languages", nil, "Extra JVM languages")
	f.StringSlice("extensions", nil, "Official extensions")
	f.StringSlice("third-party", nil, "Third-party extensions")
	f.StringP("template", "t", "", "Starter template")
	f.StringToString("versions", nil, "Version overrides by id, such as kotlin=2.0.0")
	f.Bool("skin", false, "Generate a UI skin")
	f.Bool("wrapper", false, "Include the Gradle wrapper")
	f.StringSlice("tasks", nil, "Gradle tasks to run after generation")
	f.String("preset", "", "YAML preset to start from")
	f.String("save-preset", "", "Write the final selections to this YAML preset")
	f.Bool("non-interactive", false, "Skip the wizard; use flags, environment, preset and defaults")

	return cmd
}

// runNew resolves selections, generates the project and runs Gradle.
func runNew(cmd *cobra.Command, args []string) error {
	sel, overrides, err := config.Resolve(getStringFlag(cmd, "preset"), deps.Environ)
	if err != nil {
		return err
	}
	applyFlags(cmd, sel)
	if len(args) > 0 {
		applyNameArg(cmd, sel, overrides, args[0])
	}

	loc, err := localizer(cmd, overrides.Locale)
	if err != nil {
		return err
	}
	theme := ui.NewTheme(deps.Headless.NoColor())
	out := cmd.OutOrStdout()
	console := ui.NewConsoleLogger(out, theme, loc)

	if !getBoolFlag(cmd, "non-interactive") {
		if deps.Headless.IsHeadless() {
			console.Localized("app.headless")
		} else if err := deps.Wizard(sel, loc); err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				console.Warn("app.cancelled")
				return nil
			}
			return fmt.Errorf("wizard failed: %w", err)
		}
	}

	config.Normalize(sel)
	if err := config.Validate(sel); err != nil {
		return err
	}

	if path := getStringFlag(cmd, "save-preset"); path != "" {
		if err := config.Save(path, sel); err != nil {
			return fmt.Errorf("save preset: %w", err)
		}
		console.Success("preset.saved", path)
	}

	console.Localized("generate.start", sel.Basic.Name, sel.Basic.Destination)

	progress := ui.NewStageProgress(theme, deps.Headless, loc, out)
	gen := generator.NewGenerator(deps.Deployer, deps.Renderer, progress, deps.Logger)
	result, err := gen.Generate(cmd.Context(), sel)
	progress.Stop()
	if err != nil {
		return fmt.Errorf("generate project: %w", err)
	}

	console.Block(theme.SuccessCard(
		loc.Text("generate.done", sel.Basic.Destination),
		loc.Text("generate.summary", len(result.CreatedDirs), len(result.CreatedFiles), result.PostTasks),
		loc.Text("generate.next"),
	))

	return deps.Runner.IncludeWrapper(sel, console)
}

// applyFlags copies every flag the user set into sel.
func applyFlags(cmd *cobra.Command, sel *models.ProjectSelections) {
	f := cmd.Flags()
	strs := []struct {
		flag string
		dst  *string
	}{
		{"name", &sel.Basic.Name},
		{"package", &sel.Basic.RootPackage},
		{"main-class", &sel.Basic.MainClass},
		{"destination", &sel.Basic.Destination},
		{"android-sdk", &sel.Basic.AndroidSDK},
		{"gdx-version", &sel.Advanced.GdxVersion},
		{"project-version", &sel.Advanced.ProjectVersion},
		{"java-version", &sel.Advanced.JavaVersion},
		{"android-sdk-version", &sel.Advanced.AndroidSDKVersion},
		{"template", &sel.Template},
	}
	for _, s := range strs {
		if f.Changed(s.flag) {
			*s.dst = getStringFlag(cmd, s.flag)
		}
	}

	lists := []struct {
		flag string
		dst  *[]string
	}{
		{"platforms", &sel.Platforms},
		{"languages", &sel.Languages},
		{"extensions", &sel.Extensions},
		{"third-party", &sel.ThirdParty},
		{"tasks", &sel.Advanced.GradleTasks},
	}
	for _, l := range lists {
		if f.Changed(l.flag) {
			*l.dst = getStringSliceFlag(cmd, l.flag)
		}
	}

	if f.Changed("skin") {
		sel.Advanced.GenerateSkin = getBoolFlag(cmd, "skin")
	}
	if f.Changed("wrapper") {
		sel.Advanced.AddWrapper = getBoolFlag(cmd, "wrapper")
	}
	if f.Changed("versions") {
		versions, err := f.GetStringToString("versions")
		if err == nil {
			if sel.Advanced.Versions == nil {
				sel.Advanced.Versions = make(map[string]string, len(versions))
			}
			for id, v := range versions {
				sel.Advanced.Versions[id] = v
			}
		}
	}
}

// applyNameArg uses the positional project name unless --name was given. The
// destination follows the name unless a flag or variable chose one.
func applyNameArg(cmd *cobra.Command, sel *models.ProjectSelections, overrides *config.EnvOverrides, name string) {
	if !cmd.Flags().Changed("name") {
		sel.Basic.Name = name
	}
	if !cmd.Flags().Changed("destination") && overrides.Destination == nil {
		sel.Basic.Destination = name
	}
}
