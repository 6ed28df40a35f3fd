// Package langmeta describes the display languages the game client can run
// in and decides which name dictionary a language uses.
package langmeta

import (
	"strings"

	"golang.org/x/text/language"
)

// Meta describes language display metadata.
type Meta struct {
	Name string
	Flag string
}

// Registry contains canonical language metadata for the game's clients.
// Locale variants are resolved in Resolve() via normalization and base fallback.
var Registry = map[string]Meta{
	"ja":    {Name: "日本語", Flag: "🇯🇵"},
	"en":    {Name: "English", Flag: "🇺🇸"},
	"zh":    {Name: "中文", Flag: "🇨🇳"},
	"zh-CN": {Name: "简体中文", Flag: "🇨🇳"},
	"zh-TW": {Name: "繁體中文", Flag: "🇹🇼"},
	"ko":    {Name: "한국어", Flag: "🇰🇷"},
}

// legacy maps the language codes the game itself reports to BCP 47.
var legacy = map[string]string{
	"jp": "ja",
	"cn": "zh-CN",
	"tw": "zh-TW",
	"kr": "ko",
}

// Canonicalize normalizes a language code: underscores become hyphens,
// the game's legacy codes are mapped, and the result is formatted as a
// BCP 47 tag. Unparseable input is returned trimmed.
func Canonicalize(lang string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if normalized == "" {
		return ""
	}
	if mapped, ok := legacy[strings.ToLower(normalized)]; ok {
		normalized = mapped
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return normalized
	}
	return tag.String()
}

// IsSource reports whether lang is the game's source language (Japanese).
// Empty or unparseable codes are not.
func IsSource(lang string) bool {
	canonical := Canonicalize(lang)
	if canonical == "" {
		return false
	}
	tag, err := language.Parse(canonical)
	if err != nil {
		return false
	}
	base, conf := tag.Base()
	return conf == language.Exact && base.String() == "ja"
}

// Resolve returns best-effort language metadata for language codes,
// supporting variants like ja_JP, ja-JP and the game's own "jp".
func Resolve(lang string) Meta {
	if m, ok := Registry[lang]; ok {
		return m
	}
	normalized := Canonicalize(lang)
	if m, ok := Registry[normalized]; ok {
		return m
	}
	if parts := strings.SplitN(normalized, "-", 2); len(parts) == 2 {
		if m, ok := Registry[parts[0]]; ok {
			return m
		}
	}
	return Meta{Name: lang, Flag: ""}
}
