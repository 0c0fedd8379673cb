package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/liftoff/pkg/models"
)

// LoadPreset returns the default selections overlaid by the preset at path.
// Fields the preset omits keep their defaults. An empty path yields the
// defaults unchanged.
func LoadPreset(path string) (*models.ProjectSelections, error) {
	sel := NewDefaultSelections()
	if path == "" {
		return sel, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, path)
		}
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, sel); err != nil {
		return nil, fmt.Errorf("parse preset %s: %w: %v", path, ErrInvalidYAML, err)
	}
	return sel, nil
}
