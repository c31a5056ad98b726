package store

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"saltsizer/internal/domain"
)

// Load reads the design case at path. Unknown keys and type mismatches are
// errors, as is a case with no sections.
func Load(path string) (domain.PlantCase, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.PlantCase{}, err
	}
	var c domain.PlantCase
	if err := yaml.UnmarshalStrict(b, &c); err != nil {
		return domain.PlantCase{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.Empty() {
		return domain.PlantCase{}, fmt.Errorf("%s: design case has no sections", path)
	}
	return c, nil
}

// Write writes c to path as YAML via a temp file then rename.
func Write(path string, c domain.PlantCase) error {
	b, err := Marshal(c)
	if err != nil {
		return err
	}
	return writeFile(path, b, 0o644)
}

// Marshal renders c as case-file YAML without touching the filesystem.
func Marshal(c domain.PlantCase) ([]byte, error) {
	return yaml.Marshal(c)
}
