// Package category provides canonical category name mapping from a YAML
// configuration file.
package category

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mapping represents one canonical category and its accepted aliases.
type Mapping struct {
	Canonical string   `yaml:"canonical"`
	Aliases   []string `yaml:"aliases"`
}

// MappingConfig represents the category mapping configuration file.
type MappingConfig struct {
	Categories []Mapping `yaml:"categories"`
}

// Mapper resolves category aliases to canonical names.
// The zero-value Mapper is an identity mapper.
type Mapper struct {
	aliasToCanonical map[string]string
}

// NewMapper creates a Mapper from a YAML configuration file.
func NewMapper(configPath string) (*Mapper, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read category map: %w", err)
	}

	var config MappingConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse category map: %w", err)
	}

	mapper := &Mapper{aliasToCanonical: make(map[string]string)}
	for _, m := range config.Categories {
		if m.Canonical == "" {
			return nil, fmt.Errorf("category map entry without canonical name")
		}
		mapper.aliasToCanonical[m.Canonical] = m.Canonical
		for _, alias := range m.Aliases {
			mapper.aliasToCanonical[alias] = m.Canonical
		}
	}

	return mapper, nil
}

// Identity returns a Mapper that leaves every category name unchanged.
func Identity() *Mapper {
	return &Mapper{}
}

// Canonical returns the canonical name for a category, or the input
// unchanged when no mapping exists.
func (m *Mapper) Canonical(name string) string {
	if canonical, ok := m.aliasToCanonical[name]; ok {
		return canonical
	}
	return name
}

// HasMapping checks if a mapping exists for a category name.
func (m *Mapper) HasMapping(name string) bool {
	_, ok := m.aliasToCanonical[name]
	return ok
}
