// Package merge layers name dictionaries, so a user supplement can be
// applied on top of the shipped dictionary.
package merge

import (
	"github.com/sakurairsora/BLHXFY/namedict"
)

// Merge returns a new dictionary with overlay applied on top of base.
// - Names only present in base are kept as is.
// - Names present in overlay take the overlay's default translation.
// - Scenario overrides are merged by tag: an overlay tag already declared
//   in base replaces it in place, new tags are appended after base tags.
//
// Neither input is modified.
func Merge(base, overlay *namedict.Dictionary) *namedict.Dictionary {
	result := namedict.New()

	for _, name := range base.Names() {
		e, _ := base.Entry(name)
		result.Add(e)
	}

	for _, name := range overlay.Names() {
		over, _ := overlay.Entry(name)
		existing, ok := result.Entry(name)
		if !ok {
			result.Add(over)
			continue
		}
		result.Add(namedict.Entry{
			Name:      name,
			Default:   over.Default,
			Overrides: mergeOverrides(existing.Overrides, over.Overrides),
		})
	}

	return result
}

// mergeOverrides keeps base order and lets overlay win per tag.
func mergeOverrides(base, overlay []namedict.Override) []namedict.Override {
	result := append([]namedict.Override(nil), base...)

	index := make(map[string]int, len(result))
	for i, o := range result {
		index[o.Tag] = i
	}

	for _, o := range overlay {
		if i, ok := index[o.Tag]; ok {
			result[i] = o
			continue
		}
		index[o.Tag] = len(result)
		result = append(result, o)
	}

	return result
}

// LoadFiles parses each YAML dictionary file and merges them in order,
// later files taking precedence.
func LoadFiles(paths ...string) (*namedict.Dictionary, error) {
	result := namedict.New()
	for _, path := range paths {
		d, err := namedict.ParseFile(path)
		if err != nil {
			return nil, err
		}
		result = Merge(result, d)
	}
	return result, nil
}
