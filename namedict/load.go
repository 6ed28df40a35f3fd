package namedict

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// YAML schema
// ---------------------------------------------------------------------------

// file is the on-disk dictionary layout:
//
//	names:
//	  - name: Alice
//	    trans: 爱丽丝
//	    noun: 名词
//	    scenarios:
//	      - tag: scene_evt180101
//	        trans: 小爱
type file struct {
	Names []record `yaml:"names"`
}

type record struct {
	Name        string `yaml:"name"`
	Translation `yaml:",inline"`
	Scenarios   []Override `yaml:"scenarios,omitempty"`
}

// ---------------------------------------------------------------------------
// Parsing
// ---------------------------------------------------------------------------

// Parse decodes a YAML dictionary. Within one document a repeated name
// replaces the earlier record.
func Parse(data []byte) (*Dictionary, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing name dictionary: %w", err)
	}

	d := New()
	for i, r := range f.Names {
		if r.Name == "" {
			return nil, fmt.Errorf("names[%d]: name is required", i)
		}
		for j, o := range r.Scenarios {
			if o.Tag == "" {
				return nil, fmt.Errorf("names[%d] (%s): scenarios[%d]: tag is required", i, r.Name, j)
			}
		}
		d.Add(Entry{Name: r.Name, Default: r.Translation, Overrides: r.Scenarios})
	}
	return d, nil
}

// ParseFile reads and decodes a YAML dictionary file.
func ParseFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Marshal encodes d in the same layout Parse accepts, names sorted.
func Marshal(d *Dictionary) ([]byte, error) {
	var f file
	for _, name := range d.Names() {
		e := d.entries[name]
		f.Names = append(f.Names, record{Name: e.Name, Translation: e.Default, Scenarios: e.Overrides})
	}
	return yaml.Marshal(&f)
}
