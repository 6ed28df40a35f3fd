package scenario

import (
	"regexp"
	"strings"
)

// voiceSuffix is the localized phrase for "<Name>'s Voice".
const voiceSuffix = "的声音"

// space matches one whitespace rune, including the ideographic space,
// no-break spaces and the byte order mark that show up in game text.
const space = `[\s\p{Zs}\x{FEFF}]`

// suffix is a name split by a suffixRule.
type suffix struct {
	base string
	tail string
	// reportBase is set when a miss should name base instead of the
	// whole field value.
	reportBase bool
}

// suffixRule recognizes one kind of trailing name modifier. match splits a
// name into the part to look up and the text to append to its translation.
type suffixRule struct {
	name  string
	match func(name string) (suffix, bool)
}

// regexRule builds a rule from a pattern whose first group is the base
// name. With verbatim set the second group is appended untranslated and
// misses report the base; otherwise tail is appended and misses report
// the whole name.
func regexRule(name, pattern string, verbatim bool, tail string) suffixRule {
	re := regexp.MustCompile(pattern)
	return suffixRule{
		name: name,
		match: func(s string) (suffix, bool) {
			m := re.FindStringSubmatch(s)
			if m == nil {
				return suffix{}, false
			}
			if verbatim {
				return suffix{base: m[1], tail: m[2], reportBase: true}, true
			}
			return suffix{base: m[1], tail: tail}, true
		},
	}
}

// suffixRules are evaluated in order; the first match wins.
var suffixRules = []suffixRule{
	// "Alice 2", "Guard？", "兵士　１２"
	regexRule("tag", `^(.+?)`+space+`?([?？0-9０-９]{1,2})$`, true, ""),
	// "Tom's Voice"
	regexRule("voice-en", `^(.+)'s`+space+`Voice$`, false, voiceSuffix),
	// "トムの声"
	regexRule("voice-ja", `^(.+)の声$`, false, voiceSuffix),
}

// splitSuffix applies suffixRules to name.
func splitSuffix(name string) (suffix, bool) {
	for _, r := range suffixRules {
		if sfx, ok := r.match(name); ok {
			return sfx, true
		}
	}
	return suffix{}, false
}

// isSentinel reports whether a trimmed name field means "nobody speaks".
func isSentinel(name string) bool {
	switch name {
	case "", "null", "???", "？？？":
		return true
	}
	return false
}

// Outcome classifies the result of translating one name field.
type Outcome int

const (
	// Skipped: the field held no name (absent, non-string, or a sentinel).
	Skipped Outcome = iota
	// Translated: the field was rewritten.
	Translated
	// Suppressed: the dictionary deliberately maps the name to nothing.
	Suppressed
	// Missed: the name is not in the dictionary.
	Missed
)

func (o Outcome) String() string {
	switch o {
	case Translated:
		return "translated"
	case Suppressed:
		return "suppressed"
	case Missed:
		return "missed"
	default:
		return "skipped"
	}
}

// NameResult is the outcome of translating one raw name.
type NameResult struct {
	Outcome Outcome
	// Text is the rewritten name when Outcome is Translated.
	Text string
	// Missing is the canonical name that had no entry when Outcome is
	// Missed: the base name if a numeric or question-mark tag was
	// stripped, else the whole name.
	Missing string
}

// TranslateName translates a raw name field value against dict within
// scenario. Trailing tags and voice-line suffixes are stripped, the base is
// translated, and the suffix reattached. An exact entry for the full name
// is used when the stripped base has no usable translation.
func TranslateName(raw string, dict Lookuper, scenario string) NameResult {
	name := strings.TrimSpace(raw)
	if isSentinel(name) {
		return NameResult{Outcome: Skipped}
	}

	full, found := dict.Lookup(name, scenario)
	text := full.Text
	missing := name

	if sfx, ok := splitSuffix(name); ok {
		bt, bfound := dict.Lookup(sfx.base, scenario)
		switch {
		case bfound && bt.Text != "":
			text, found = bt.Text+sfx.tail, true
		case !found:
			text, found = bt.Text, bfound
			if sfx.reportBase {
				missing = sfx.base
			}
		}
	}

	switch {
	case text != "":
		return NameResult{Outcome: Translated, Text: text}
	case found:
		return NameResult{Outcome: Suppressed}
	default:
		return NameResult{Outcome: Missed, Missing: missing}
	}
}
