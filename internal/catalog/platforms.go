package catalog

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/modu-ai/liftoff/internal/core/project"
	"github.com/modu-ai/liftoff/internal/gradle"
	"github.com/modu-ai/liftoff/internal/template"
	"github.com/modu-ai/liftoff/pkg/models"
)

// Build plugin versions pinned by platform contributions.
const (
	androidPluginVersion = "8.7.3"
	robovmVersion        = "2.3.23"
	gwtPluginVersion     = "1.1.29"
	gwtFrameworkVersion  = "2.11.0"
	grettyVersion        = "3.1.0"
	teaVMBackendVersion  = "1.0.5"
)

// platforms is the catalog order; generation follows it, so core is always first.
var platforms = []Entry{
	{ID: models.PlatformCore, Name: "Core", Description: "Shared application logic used by every platform."},
	{ID: models.PlatformLwjgl3, Name: "Desktop", Description: "Primary desktop platform using LWJGL3."},
	{ID: models.PlatformAndroid, Name: "Android", Description: "Android mobile platform. Needs the Android SDK."},
	{ID: models.PlatformIOS, Name: "iOS", Description: "iOS mobile backend using RoboVM."},
	{ID: models.PlatformHTML, Name: "HTML", Description: "Web platform using GWT and WebGL."},
	{ID: models.PlatformTeaVM, Name: "TeaVM", Description: "Experimental web platform using TeaVM and WebGL."},
	{ID: models.PlatformHeadless, Name: "Headless", Description: "Desktop backend without a graphical interface."},
	{ID: models.PlatformServer, Name: "Server", Description: "Separate application without access to the framework API."},
	{ID: models.PlatformShared, Name: "Shared", Description: "Common code shared by the core and server modules."},
}

// Platforms lists the known platforms in generation order.
func Platforms() []Entry { return slices.Clone(platforms) }

// IsPlatform reports whether id is a known platform.
func IsPlatform(id string) bool { return contains(platforms, id) }

// OrderPlatforms returns the known ids among selected in catalog order, once each.
func OrderPlatforms(selected []string) []string {
	var out []string
	for _, e := range platforms {
		if slices.Contains(selected, e.ID) {
			out = append(out, e.ID)
		}
	}
	return out
}

// InitiatePlatform adds a platform's files, descriptor entries and properties.
func InitiatePlatform(p *project.Project, id string) error {
	switch id {
	case models.PlatformCore:
		initCore(p)
	case models.PlatformLwjgl3:
		initLwjgl3(p)
	case models.PlatformAndroid:
		return initAndroid(p)
	case models.PlatformIOS:
		initIOS(p)
	case models.PlatformHTML:
		initHTML(p)
	case models.PlatformTeaVM:
		initTeaVM(p)
	case models.PlatformHeadless:
		initHeadless(p)
	case models.PlatformServer:
		initServer(p)
	case models.PlatformShared:
		initShared(p)
	default:
		return fmt.Errorf("%w: platform %q", ErrUnknownID, id)
	}
	return nil
}

func initCore(p *project.Project) {
	id := models.PlatformCore
	d := p.Descriptor(id)
	d.AddDependency(gradle.API, gdx("gdx"))
	if p.HasPlatform(models.PlatformShared) {
		d.AddDependency(gradle.API, projectRef(models.PlatformShared))
	}
	p.AddFile(project.SourceDirectory{Project: id, Path: sourcePath(p, "java", "")})

	if p.HasPlatform(models.PlatformHTML) {
		p.AddFile(project.TemplateFile{
			Project: id,
			Path:    "src/main/java/" + p.Context().MainClass + ".gwt.xml",
			Source:  "core/Main.gwt.xml.tmpl",
		})
	}
}

func initLwjgl3(p *project.Project) {
	id := models.PlatformLwjgl3
	d := p.Descriptor(id)
	d.AddPlugin("application")
	d.AddDependency(gradle.Implementation, projectRef(models.PlatformCore))
	d.AddDependency(gradle.API, gdx("gdx-backend-lwjgl3"))
	d.AddDependency(gradle.API, gdxClassifier("gdx-platform", "natives-desktop"))

	p.AddFile(project.TemplateFile{
		Project: id,
		Path:    sourcePath(p, "java", "lwjgl3/Lwjgl3Launcher.java"),
		Source:  "lwjgl3/Lwjgl3Launcher.java.tmpl",
	})
	for _, size := range []string{"16", "32", "64", "128"} {
		name := "libgdx" + size + ".png"
		p.AddFile(project.CopiedFile{
			Project: id,
			Path:    "src/main/resources/" + name,
			Source:  "lwjgl3/icons/" + name,
			Origin:  template.OriginGenerator,
		})
	}
}

// initAndroid converts the SDK version text before touching the project so a
// malformed value leaves no Android contributions behind.
func initAndroid(p *project.Project) error {
	id := models.PlatformAndroid
	if text := strings.TrimSpace(p.Selections().Advanced.AndroidSDKVersion); text != "" {
		sdk, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSDKVersion, err)
		}
		p.Context().AndroidSDKVersion = sdk
	}

	p.Root().AddBuildDependency("com.android.tools.build:gradle:" + androidPluginVersion)
	p.Properties().Set("android.useAndroidX", "true")
	p.Properties().Set("android.enableR8.fullMode", "false")

	d := p.Descriptor(id)
	d.AddPlugin("com.android.application")
	d.AddDependency(gradle.Implementation, projectRef(models.PlatformCore))
	d.AddDependency(gradle.API, gdx("gdx-backend-android"))
	for _, abi := range androidABIs {
		d.AddDependency(gradle.Natives, gdxClassifier("gdx-platform", "natives-"+abi))
	}

	p.AddFile(project.TemplateFile{Project: id, Path: "AndroidManifest.xml", Source: "android/AndroidManifest.xml.tmpl"})
	p.AddFile(project.TemplateFile{Project: id, Path: "res/values/strings.xml", Source: "android/strings.xml.tmpl"})
	p.AddFile(project.CopiedFile{Project: id, Path: "res/drawable/ic_launcher.png", Source: "lwjgl3/icons/libgdx64.png"})
	p.AddFile(project.CopiedFile{Project: id, Path: "proguard-rules.pro", Source: "android/proguard-rules.pro"})
	p.AddFile(project.TemplateFile{
		Project: id,
		Path:    sourcePath(p, "java", "android/AndroidLauncher.java"),
		Source:  "android/AndroidLauncher.java.tmpl",
	})
	if p.Context().AndroidSDKPath != "" {
		p.AddFile(project.TemplateFile{Path: "local.properties", Source: "android/local.properties.tmpl"})
	}
	return nil
}

func initIOS(p *project.Project) {
	id := models.PlatformIOS
	p.Root().AddBuildDependency("com.mobidevelop.robovm:robovm-gradle-plugin:$robovmVersion")
	p.Properties().SetDefault("robovmVersion", robovmVersion)

	d := p.Descriptor(id)
	d.AddPlugin("robovm")
	d.AddDependency(gradle.Implementation, projectRef(models.PlatformCore))
	d.AddDependency(gradle.API, "com.mobidevelop.robovm:robovm-rt:$robovmVersion")
	d.AddDependency(gradle.API, "com.mobidevelop.robovm:robovm-cocoatouch:$robovmVersion")
	d.AddDependency(gradle.API, gdx("gdx-backend-robovm"))
	d.AddDependency(gradle.API, gdxClassifier("gdx-platform", "natives-ios"))

	p.AddFile(project.TemplateFile{Project: id, Path: sourcePath(p, "java", "IOSLauncher.java"), Source: "ios/IOSLauncher.java.tmpl"})
	p.AddFile(project.TemplateFile{Project: id, Path: "robovm.xml", Source: "ios/robovm.xml.tmpl"})
	p.AddFile(project.TemplateFile{Project: id, Path: "robovm.properties", Source: "ios/robovm.properties.tmpl"})
	p.AddFile(project.TemplateFile{Project: id, Path: "Info.plist.xml", Source: "ios/Info.plist.xml.tmpl"})
	p.AddFile(project.SourceDirectory{Project: id, Path: "data"})
}

func initHTML(p *project.Project) {
	id := models.PlatformHTML
	p.Root().AddBuildDependency("org.docstr:gwt-gradle-plugin:$gwtPluginVersion")
	p.Root().AddBuildDependency("org.gretty:gretty:" + grettyVersion)
	p.Properties().SetDefault("gwtPluginVersion", gwtPluginVersion)
	p.Properties().SetDefault("gwtFrameworkVersion", gwtFrameworkVersion)

	d := p.Descriptor(id)
	d.AddPlugin("java")
	d.AddPlugin("gwt")
	d.AddPlugin("war")
	d.AddPlugin("org.gretty")
	d.AddDependency(gradle.Implementation, projectRef(models.PlatformCore))
	d.AddDependency(gradle.Implementation, gdx("gdx-backend-gwt"))
	d.AddDependency(gradle.Implementation, gdxClassifier("gdx-backend-gwt", "sources"))
	d.AddDependency(gradle.Implementation, gdxClassifier("gdx", "sources"))

	p.AddFile(project.TemplateFile{Project: id, Path: sourcePath(p, "java", "GdxDefinition.gwt.xml"), Source: "html/GdxDefinition.gwt.xml.tmpl"})
	p.AddFile(project.TemplateFile{Project: id, Path: sourcePath(p, "java", "GdxDefinitionSuperdev.gwt.xml"), Source: "html/GdxDefinitionSuperdev.gwt.xml.tmpl"})
	p.AddFile(project.TemplateFile{Project: id, Path: sourcePath(p, "java", "gwt/GwtLauncher.java"), Source: "html/GwtLauncher.java.tmpl"})
	p.AddFile(project.TemplateFile{Project: id, Path: "webapp/index.html", Source: "html/index.html.tmpl"})
	p.AddFile(project.CopiedFile{Project: id, Path: "webapp/styles.css", Source: "html/styles.css"})
}

func initTeaVM(p *project.Project) {
	id := models.PlatformTeaVM
	p.Properties().SetDefault("gdxTeaVMVersion", teaVMBackendVersion)

	d := p.Descriptor(id)
	d.AddDependency(gradle.Implementation, projectRef(models.PlatformCore))
	d.AddDependency(gradle.Implementation, "com.github.xpenatan.gdx-teavm:backend-teavm:$gdxTeaVMVersion")

	p.AddFile(project.TemplateFile{Project: id, Path: sourcePath(p, "java", "teavm/TeaVMLauncher.java"), Source: "teavm/TeaVMLauncher.java.tmpl"})
	p.AddFile(project.TemplateFile{Project: id, Path: sourcePath(p, "java", "teavm/TeaVMBuilder.java"), Source: "teavm/TeaVMBuilder.java.tmpl"})
}

func initHeadless(p *project.Project) {
	id := models.PlatformHeadless
	d := p.Descriptor(id)
	d.AddPlugin("application")
	d.AddDependency(gradle.Implementation, projectRef(models.PlatformCore))
	d.AddDependency(gradle.API, gdx("gdx-backend-headless"))
	d.AddDependency(gradle.API, gdxClassifier("gdx-platform", "natives-desktop"))

	p.AddFile(project.TemplateFile{Project: id, Path: sourcePath(p, "java", "headless/HeadlessLauncher.java"), Source: "headless/HeadlessLauncher.java.tmpl"})
}

func initServer(p *project.Project) {
	id := models.PlatformServer
	d := p.Descriptor(id)
	d.AddPlugin("application")
	if p.HasPlatform(models.PlatformShared) {
		d.AddDependency(gradle.Implementation, projectRef(models.PlatformShared))
	}

	p.AddFile(project.TemplateFile{Project: id, Path: sourcePath(p, "java", "server/ServerLauncher.java"), Source: "server/ServerLauncher.java.tmpl"})
}

func initShared(p *project.Project) {
	id := models.PlatformShared
	p.AddFile(project.SourceDirectory{Project: id, Path: sourcePath(p, "java", "")})
}
