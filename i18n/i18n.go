// Package i18n translates the CLI's own messages.
//
// Catalogs are gettext PO files embedded from locales/{lang}/LC_MESSAGES
// and read with gotext. Without Init, or for a language with no catalog,
// T and N return the English source text.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"

	"github.com/sakurairsora/BLHXFY/langmeta"
)

//go:embed all:locales
var locales embed.FS

const domain = "blhxfy"

var po *gotext.Locale

// Init loads the catalog for lang, or for the language found in the
// environment (LANGUAGE, LC_ALL, LC_MESSAGES, LANG) when lang is empty.
func Init(lang string) {
	if lang == "" {
		lang = detectLanguage()
	}

	po = gotext.NewLocaleFSWithPath(catalogName(lang), locales, "locales")
	po.AddDomain(domain)
	po.SetDomain(domain)
}

// T translates msgid.
func T(msgid string, vars ...any) string {
	if po == nil {
		return sprintf(msgid, vars...)
	}
	return po.Get(msgid, vars...)
}

// N translates a message with a plural form.
func N(singular, plural string, n int, vars ...any) string {
	if po == nil {
		if n == 1 {
			return sprintf(singular, vars...)
		}
		return sprintf(plural, vars...)
	}
	return po.GetN(singular, plural, n, vars...)
}

// catalogName maps a language code to the directory name used under
// locales/, e.g. "zh-CN" to "zh_CN".
func catalogName(lang string) string {
	return strings.ReplaceAll(langmeta.Canonicalize(lang), "-", "_")
}

// detectLanguage follows GNU gettext precedence:
// LANGUAGE > LC_ALL > LC_MESSAGES > LANG.
func detectLanguage() string {
	for _, key := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(key)
		if val == "" {
			continue
		}
		if key == "LANGUAGE" {
			val, _, _ = strings.Cut(val, ":")
		}
		val, _, _ = strings.Cut(val, ".")
		if val == "" || val == "C" || val == "POSIX" {
			continue
		}
		return val
	}
	return "en"
}

func sprintf(format string, vars ...any) string {
	if len(vars) == 0 {
		return format
	}
	return fmt.Sprintf(format, vars...)
}
