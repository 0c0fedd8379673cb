package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the requested bundle file does not exist.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates template execution referenced a missing key.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates rendered output still contains template tokens.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")

	// ErrPathTraversal indicates a destination path escapes the project root.
	ErrPathTraversal = errors.New("template: path escapes project root")

	// ErrUnknownOrigin indicates a copy was requested from an unknown bundle.
	ErrUnknownOrigin = errors.New("template: unknown file origin")
)
