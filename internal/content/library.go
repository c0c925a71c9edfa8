package content

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_content.yaml
var defaultContentFS embed.FS

type Library struct {
	News   []Item `yaml:"news"`
	Events []Item `yaml:"events"`
}

// Items returns the collection for kind.
func (l *Library) Items(kind Kind) []Item {
	if l == nil {
		return nil
	}
	if kind == Events {
		return l.Events
	}
	return l.News
}

func loadDefaults() (*Library, error) {
	data, err := defaultContentFS.ReadFile("default_content.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded content: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a library document.
func Parse(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

// LoadLibrary reads the library at path, or the embedded sample when path is empty.
func LoadLibrary(path string) (*Library, error) {
	if path == "" {
		return loadDefaults()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// Marshal encodes the library in the same YAML shape LoadLibrary reads.
func (l *Library) Marshal() ([]byte, error) {
	return yaml.Marshal(l)
}

func (l *Library) Validate() error {
	for _, kind := range []Kind{News, Events} {
		seen := make(map[int]bool)
		for i, it := range l.Items(kind) {
			if it.Title == "" {
				return fmt.Errorf("%s item %d: title is required", kind, i)
			}
			if seen[it.ID] {
				return fmt.Errorf("%s item %q: duplicate id %d", kind, it.Title, it.ID)
			}
			seen[it.ID] = true
		}
	}
	return nil
}
