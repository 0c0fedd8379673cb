// Package models provides the selection models shared across liftoff packages.
//
// A [ProjectSelections] value captures everything a user chose before a
// project is generated: basic metadata, advanced options, enabled JVM
// languages, enabled extensions, the project template and the target
// platforms. It is filled once (flags, preset file, environment or the
// interactive wizard) and only read afterwards.
//
// # Platforms
//
// Platform identifiers name Gradle sub-projects. The "core" platform holds the
// shared game code and is always required:
//
//	sel := models.ProjectSelections{Platforms: []string{"core", "lwjgl3"}}
//	sel.HasPlatform("android") // false
//
// # Versions
//
// [AdvancedData.Versions] overrides the default version of a language or a
// third-party extension by identifier:
//
//	sel.Advanced.Versions = map[string]string{"kotlin": "2.1.0"}
package models
