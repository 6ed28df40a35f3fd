// Package namedict holds the character name dictionaries used by the
// scenario overlay.
//
// Each entry maps a canonical (untranslated) name to a default translation
// and an ordered list of scenario-scoped overrides. An override applies when
// its tag occurs anywhere inside the active scenario identifier; the first
// declared tag that matches wins.
//
// A translation whose Text is empty is a suppression marker: the name is
// known but must be left untranslated. Lookup reports it as found so callers
// can tell it apart from a dictionary miss.
package namedict

import (
	"sort"
	"strings"

	"github.com/sakurairsora/BLHXFY/langmeta"
)

// Translation is a localized name and its classifier.
type Translation struct {
	Text string `yaml:"trans"`
	Noun string `yaml:"noun,omitempty"`
}

// Override is a translation that applies only inside scenarios whose
// identifier contains Tag.
type Override struct {
	Tag         string `yaml:"tag"`
	Translation `yaml:",inline"`
}

// Entry is one dictionary record.
type Entry struct {
	Name      string
	Default   Translation
	Overrides []Override
}

// Resolve picks the translation for scenario: the first override whose tag
// is a substring of scenario, or the default.
func (e *Entry) Resolve(scenario string) Translation {
	for _, o := range e.Overrides {
		if o.Tag != "" && strings.Contains(scenario, o.Tag) {
			return o.Translation
		}
	}
	return e.Default
}

// Dictionary maps canonical names to entries. It must not be modified
// once handed to an overlay; lookups are then safe for concurrent use.
type Dictionary struct {
	entries map[string]*Entry
}

// New builds a dictionary from entries. A later entry with the same name
// replaces an earlier one.
func New(entries ...Entry) *Dictionary {
	d := &Dictionary{entries: make(map[string]*Entry, len(entries))}
	for _, e := range entries {
		d.Add(e)
	}
	return d
}

// Add inserts or replaces an entry. Overrides are copied.
func (d *Dictionary) Add(e Entry) {
	if d.entries == nil {
		d.entries = make(map[string]*Entry)
	}
	cp := e
	cp.Overrides = append([]Override(nil), e.Overrides...)
	d.entries[e.Name] = &cp
}

// Len returns the number of names.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Names returns all canonical names in sorted order.
func (d *Dictionary) Names() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.entries))
	for name := range d.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entry returns a copy of the entry for name.
func (d *Dictionary) Entry(name string) (Entry, bool) {
	if d == nil {
		return Entry{}, false
	}
	e, ok := d.entries[name]
	if !ok {
		return Entry{}, false
	}
	cp := *e
	cp.Overrides = append([]Override(nil), e.Overrides...)
	return cp, true
}

// Lookup resolves name within scenario. The boolean is false only when the
// name is not in the dictionary.
func (d *Dictionary) Lookup(name, scenario string) (Translation, bool) {
	if d == nil {
		return Translation{}, false
	}
	e, ok := d.entries[name]
	if !ok {
		return Translation{}, false
	}
	return e.Resolve(scenario), true
}

// Set is the pair of dictionaries selected by display language.
type Set struct {
	// Foreign is used when the game is displayed in a language other than
	// Japanese (the game's enNameMap).
	Foreign *Dictionary
	// Source is used for the Japanese client (jpNameMap).
	Source *Dictionary
}

// For returns the dictionary for the display language lang.
func (s Set) For(lang string) *Dictionary {
	if langmeta.IsSource(lang) {
		return s.Source
	}
	return s.Foreign
}
