// Package gradle models the Gradle build scripts of a generated project.
//
// A File accumulates plugins, dependency declarations and raw script lines
// while the project is assembled. Nothing is written until Render is called
// during the save stage, so contributions from languages, extensions,
// templates and platforms can arrive in any order.
package gradle
