// Package project holds the in-memory model of a project being generated:
// the pending file registry, the shared Gradle property bag, one build
// descriptor per enabled platform plus the root descriptor, and the queue of
// tasks that run once everything is on disk.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrUnknownPlatform indicates a descriptor lookup for a platform that is not enabled.
	// Lookups panic with this error; callers must only ask for enabled platforms.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrUnknownFileKind indicates a pending file of a type the save stage cannot handle.
	ErrUnknownFileKind = errors.New("unknown pending file kind")

	// ErrUnknownTask indicates a post task of a type the runner cannot handle.
	ErrUnknownTask = errors.New("unknown post task kind")

	// ErrSaveFailed indicates writing the project to its destination failed.
	ErrSaveFailed = errors.New("save failed")
)
