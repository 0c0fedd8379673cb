package defs

// Common file names written at the root of a generated project.
const (
	// BuildGradle is the Gradle build script name used by the root and every sub-project.
	BuildGradle = "build.gradle"

	// SettingsGradle enumerates the sub-projects of the build.
	SettingsGradle = "settings.gradle"

	// GradleProperties holds shared version numbers and Gradle daemon options.
	GradleProperties = "gradle.properties"

	// GitIgnore is the version-control ignore file.
	GitIgnore = ".gitignore"
)

// Gradle wrapper artifacts, relative to the project root.
const (
	GradlewScript     = "gradlew"
	GradlewBatScript  = "gradlew.bat"
	WrapperJar        = "gradle/wrapper/gradle-wrapper.jar"
	WrapperProperties = "gradle/wrapper/gradle-wrapper.properties"
)

// Shared sub-project directories that are not platforms.
const (
	// AssetsDir holds runtime assets shared by every platform.
	AssetsDir = "assets"

	// RawDir holds unprocessed assets such as UI skin images awaiting packing.
	RawDir = "raw"
)
