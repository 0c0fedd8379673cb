package template

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/modu-ai/liftoff/internal/defs"
)

// Origin identifies the bundle a copied file comes from.
type Origin int

const (
	// OriginGenerator is the generator's own resource bundle.
	OriginGenerator Origin = iota
	// OriginClasspath mirrors resources the framework ships inside its jars.
	OriginClasspath
)

// String returns a human-readable origin name.
func (o Origin) String() string {
	switch o {
	case OriginGenerator:
		return "generator"
	case OriginClasspath:
		return "classpath"
	default:
		return fmt.Sprintf("origin(%d)", int(o))
	}
}

// Deployer writes bundle resources and generated content below a destination root.
// Every destination path is relative to root and must stay inside it.
type Deployer interface {
	// Copy copies a bundle file verbatim.
	Copy(root, src, dest string, origin Origin) error

	// Render renders a bundle template with data and writes the result.
	Render(root, src, dest string, data any) error

	// Mkdir creates an empty directory (and its parents).
	Mkdir(root, dest string) error

	// Write writes content, replacing any existing file.
	Write(root, dest string, content []byte) error

	// Append appends content to an existing file.
	Append(root, dest string, content []byte) error
}

// deployer is the concrete implementation of Deployer.
type deployer struct {
	generator fs.FS
	classpath fs.FS
	renderer  Renderer
}

// NewDeployer creates a Deployer backed by the given bundles.
// In production both come from go:embed; in tests use testing/fstest.MapFS.
func NewDeployer(generator, classpath fs.FS, renderer Renderer) Deployer {
	if renderer == nil {
		renderer = NewRenderer(generator)
	}
	return &deployer{generator: generator, classpath: classpath, renderer: renderer}
}

// NewEmbeddedDeployer creates a Deployer over the bundles compiled into the binary.
func NewEmbeddedDeployer() (Deployer, Renderer, error) {
	gen, err := EmbeddedTemplates()
	if err != nil {
		return nil, nil, err
	}
	cp, err := EmbeddedClasspath()
	if err != nil {
		return nil, nil, err
	}
	r := NewRenderer(gen)
	return NewDeployer(gen, cp, r), r, nil
}

func (d *deployer) Copy(root, src, dest string, origin Origin) error {
	var fsys fs.FS
	switch origin {
	case OriginGenerator:
		fsys = d.generator
	case OriginClasspath:
		fsys = d.classpath
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOrigin, origin)
	}
	if fsys == nil {
		return fmt.Errorf("%w: %s bundle not configured", ErrUnknownOrigin, origin)
	}

	content, err := fs.ReadFile(fsys, src)
	if err != nil {
		return fmt.Errorf("%w: %s (%s)", ErrTemplateNotFound, src, origin)
	}
	return d.Write(root, dest, content)
}

func (d *deployer) Render(root, src, dest string, data any) error {
	content, err := d.renderer.Render(src, data)
	if err != nil {
		return err
	}
	return d.Write(root, dest, content)
}

func (d *deployer) Mkdir(root, dest string) error {
	target, err := resolve(root, dest)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(target, defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %q: %w", target, err)
	}
	return nil
}

func (d *deployer) Write(root, dest string, content []byte) error {
	target, err := resolve(root, dest)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %q: %w", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, content, defs.FilePerm); err != nil {
		return fmt.Errorf("write %q: %w", target, err)
	}
	return nil
}

func (d *deployer) Append(root, dest string, content []byte) error {
	target, err := resolve(root, dest)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(target, os.O_APPEND|os.O_WRONLY, defs.FilePerm)
	if err != nil {
		return fmt.Errorf("open %q for append: %w", target, err)
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("append %q: %w", target, err)
	}
	return f.Close()
}

// resolve validates dest and joins it onto root.
func resolve(root, dest string) (string, error) {
	root = filepath.Clean(root)
	if err := validateDeployPath(root, dest); err != nil {
		return "", err
	}
	return filepath.Join(root, filepath.FromSlash(dest)), nil
}

// validateDeployPath ensures a destination path does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) && absPath != absProjectRoot {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}

	return nil
}
