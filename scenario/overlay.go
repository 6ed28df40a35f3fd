// Package scenario rewrites character names and dialogue text in decoded
// scene payloads.
//
// A payload is either a bare list of scene entries or an object carrying
// that list under "scene_list". The scenario identifier is taken from the
// request path; paths without one pass through untouched. Each entry's
// name fields are translated through the name dictionary for the display
// language, with trailing tags and voice-line suffixes recomposed, and any
// precomputed text overrides for the entry are applied.
//
// Nothing here fails: unresolvable input degrades to passthrough.
package scenario

import (
	"context"

	"github.com/sakurairsora/BLHXFY/namedict"
)

// Lookuper resolves a canonical name within a scenario. The boolean is
// false for a dictionary miss; a found translation with empty Text means
// the name is deliberately left as is.
type Lookuper interface {
	Lookup(name, scenario string) (namedict.Translation, bool)
}

// Overlay applies name dictionaries and text overrides to scene payloads.
// It is immutable once built and safe for concurrent use.
type Overlay struct {
	names     namedict.Set
	overrides TextOverrides
}

// NewOverlay builds an overlay. overrides may be nil.
func NewOverlay(names namedict.Set, overrides TextOverrides) *Overlay {
	return &Overlay{names: names, overrides: overrides}
}

// Report describes what a transform did.
type Report struct {
	// Scenario is the identifier taken from the path, empty on passthrough.
	Scenario string
	// Untranslated lists names without a dictionary entry, in the order
	// they were met. Duplicates are kept.
	Untranslated []string
}

// Applied reports whether the payload was processed at all.
func (r Report) Applied() bool { return r.Scenario != "" }

// Transform rewrites payload for the request at pathname, using the
// dictionary for display language lang. The returned value has the same
// shape as payload; slices and maps are modified in place. ctx is accepted
// for the calling pipeline and is not consulted.
func (o *Overlay) Transform(_ context.Context, payload any, pathname, lang string) (any, Report) {
	scenario, ok := ResolveScenario(pathname)
	if !ok {
		return payload, Report{}
	}

	list, wrapper := sceneList(payload)
	if list == nil {
		return payload, Report{}
	}

	report := Report{Scenario: scenario}
	dict := o.names.For(lang)
	for _, item := range list {
		entry, ok := asEntry(item)
		if !ok {
			continue
		}
		report.Untranslated = append(report.Untranslated, entry.applyNames(dict, scenario)...)
		entry.applyText(o.overrides)
	}

	if wrapper != nil {
		wrapper[FieldSceneList] = list
		return wrapper, report
	}
	return list, report
}

// sceneList returns the entry list carried by payload and, for the
// wrapped shape, the object holding it.
func sceneList(payload any) ([]any, map[string]any) {
	switch v := payload.(type) {
	case []any:
		return v, nil
	case map[string]any:
		if list, ok := v[FieldSceneList].([]any); ok {
			return list, v
		}
	}
	return nil, nil
}

func asEntry(item any) (SceneEntry, bool) {
	switch v := item.(type) {
	case map[string]any:
		return SceneEntry(v), true
	case SceneEntry:
		return v, true
	}
	return nil, false
}
