package langmeta

import "testing"

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"en", "en"},
		{"ja_JP", "ja-JP"},
		{"zh-cn", "zh-CN"},
		{"jp", "ja"},
		{"JP", "ja"},
		{"tw", "zh-TW"},
	}
	for _, tc := range tests {
		if got := Canonicalize(tc.in); got != tc.want {
			t.Fatalf("Canonicalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsSource(t *testing.T) {
	for _, lang := range []string{"jp", "ja", "ja-JP", "ja_JP"} {
		if !IsSource(lang) {
			t.Fatalf("IsSource(%q) = false, want true", lang)
		}
	}
	for _, lang := range []string{"", "en", "en-US", "zh-CN", "not a language", "und-JP"} {
		if IsSource(lang) {
			t.Fatalf("IsSource(%q) = true, want false", lang)
		}
	}
}

func TestResolveSupportsVariantsAndFallback(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want Meta
	}{
		{name: "exact", lang: "en", want: Registry["en"]},
		{name: "legacy game code", lang: "jp", want: Registry["ja"]},
		{name: "underscore variant", lang: "zh_TW", want: Registry["zh-TW"]},
		{name: "base fallback", lang: "en-GB", want: Registry["en"]},
		{name: "unknown", lang: "xx-YY", want: Meta{Name: "xx-YY", Flag: ""}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.lang); got != tc.want {
				t.Fatalf("Resolve(%q) = %#v, want %#v", tc.lang, got, tc.want)
			}
		})
	}
}
