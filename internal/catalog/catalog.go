// Package catalog is the fixed set of platforms, JVM languages, extensions and
// starter templates the generator knows about, together with what each of
// them contributes to a project.
//
// Every kind is a closed set of string ids. Contributions are dispatched with
// switch statements; adding an entry means adding a case and a listing row.
package catalog

import (
	"errors"
	"slices"
)

// Sentinel errors for the catalog package.
var (
	// ErrUnknownID indicates an id that is not part of the catalog.
	ErrUnknownID = errors.New("catalog: unknown id")

	// ErrInvalidSDKVersion indicates the Android SDK version is not a number.
	ErrInvalidSDKVersion = errors.New("catalog: invalid android sdk version")
)

// Entry describes one selectable item for listings and validation.
type Entry struct {
	ID          string
	Name        string
	Description string
	// Version is the default version for languages and third-party
	// extensions. Official extensions follow the framework version.
	Version string
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func contains(entries []Entry, id string) bool {
	return slices.ContainsFunc(entries, func(e Entry) bool { return e.ID == id })
}

func lookup(entries []Entry, id string) (Entry, bool) {
	i := slices.IndexFunc(entries, func(e Entry) bool { return e.ID == id })
	if i < 0 {
		return Entry{}, false
	}
	return entries[i], true
}
