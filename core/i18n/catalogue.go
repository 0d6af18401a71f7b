package i18n

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var embeddedMessages []byte

// ErrInvalidCatalogue is returned when a catalogue file cannot be used.
var ErrInvalidCatalogue = errors.New("i18n: invalid catalogue")

// Catalogue maps a locale code to its message templates by key.
type Catalogue map[string]map[string]string

// ParseCatalogue decodes a YAML catalogue of the form
//
//	en:
//	  countryNotFound: "Country with name '{param}' not found"
func ParseCatalogue(data []byte) (Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalogue, err)
	}
	if len(c) == 0 {
		return nil, fmt.Errorf("%w: no locales defined", ErrInvalidCatalogue)
	}
	return c, nil
}

// DefaultCatalogue returns the catalogue compiled into the binary.
func DefaultCatalogue() (Catalogue, error) {
	return ParseCatalogue(embeddedMessages)
}

// LoadCatalogue reads the catalogue at path, or the embedded one when path is empty.
func LoadCatalogue(path string) (Catalogue, error) {
	if path == "" {
		return DefaultCatalogue()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue %s: %w", path, err)
	}
	return ParseCatalogue(data)
}

// Locales returns the catalogue's locale codes in sorted order.
func (c Catalogue) Locales() []string {
	return slices.Sorted(maps.Keys(c))
}
