package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TextOverrides holds precomputed text translations keyed by scene entry
// id, then by text field name (see TextFields). It is filled by whatever
// prefetches scene translations; an empty map disables the text overlay.
type TextOverrides map[string]map[string]string

// LoadTextOverrides reads a YAML file of the form
//
//	"10001":
//	  synopsis: ...
//	  sel1_txt: ...
//
// A missing file yields an empty map.
func LoadTextOverrides(path string) (TextOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return TextOverrides{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	overrides := TextOverrides{}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return overrides, nil
}
