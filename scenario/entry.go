package scenario

import (
	"encoding/json"
	"strconv"
)

// Scene entry field names as the game API spells them.
const (
	FieldID        = "id"
	FieldSceneList = "scene_list"
)

// NameFields are the character name fields of a scene entry, in the order
// they are processed.
var NameFields = []string{"charcter1_name", "charcter2_name", "charcter3_name"}

// TextFields are the localizable text fields an override may replace.
var TextFields = []string{
	"chapter_name",
	"synopsis",
	"detail",
	"sel1_txt",
	"sel2_txt",
	"sel3_txt",
	"sel4_txt",
}

// SceneEntry is one decoded scene record. Unknown fields are preserved.
type SceneEntry map[string]any

// ID returns the entry identifier as a string. Numeric ids decoded either
// as json.Number or float64 are formatted without exponent.
func (e SceneEntry) ID() (string, bool) {
	switch v := e[FieldID].(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	default:
		return "", false
	}
}

// applyNames translates each name field of e in place and returns the
// names that had no dictionary entry.
func (e SceneEntry) applyNames(dict Lookuper, scenario string) []string {
	var missing []string
	for _, key := range NameFields {
		raw, ok := e[key].(string)
		if !ok {
			continue
		}
		res := TranslateName(raw, dict, scenario)
		switch res.Outcome {
		case Translated:
			e[key] = res.Text
		case Missed:
			missing = append(missing, res.Missing)
		}
	}
	return missing
}

// applyText overwrites text fields that have a non-empty override.
func (e SceneEntry) applyText(overrides TextOverrides) {
	if len(overrides) == 0 {
		return
	}
	id, ok := e.ID()
	if !ok {
		return
	}
	texts, ok := overrides[id]
	if !ok {
		return
	}
	for _, key := range TextFields {
		if v := texts[key]; v != "" {
			e[key] = v
		}
	}
}
