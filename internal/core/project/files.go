package project

import (
	"path"

	"github.com/modu-ai/liftoff/internal/template"
)

// PendingFile is an output artifact queued during generation and written
// once by the save stage. The set of implementations is closed:
// CopiedFile, SourceDirectory and TemplateFile.
type PendingFile interface {
	// Destination returns the slash-separated path relative to the project root.
	Destination() string

	pendingFile()
}

// CopiedFile copies a bundle resource verbatim.
type CopiedFile struct {
	Project string // owning sub-project; empty for the root
	Path    string // path inside the sub-project
	Source  string // path inside the bundle
	Origin  template.Origin
}

// SourceDirectory creates an empty directory.
type SourceDirectory struct {
	Project string
	Path    string
}

// TemplateFile renders a bundle template with the project's render data.
type TemplateFile struct {
	Project string
	Path    string
	Source  string
}

func (f CopiedFile) Destination() string      { return path.Join(f.Project, f.Path) }
func (f SourceDirectory) Destination() string { return path.Join(f.Project, f.Path) }
func (f TemplateFile) Destination() string    { return path.Join(f.Project, f.Path) }

func (CopiedFile) pendingFile()      {}
func (SourceDirectory) pendingFile() {}
func (TemplateFile) pendingFile()    {}
