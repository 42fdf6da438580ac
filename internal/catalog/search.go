package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldKey case-folds s and strips diacritics so "MELAO" matches "Melão".
// Transformers are stateful, so a fresh chain is built per call.
func foldKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Fold())
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

// searchKeys are the pre-folded strings an item can be found by
type searchKeys struct {
	name        string
	localized   string
	externalRef string
}

func newSearchKeys(name, localized, externalRef string) searchKeys {
	return searchKeys{
		name:        foldKey(name),
		localized:   foldKey(localized),
		externalRef: foldKey(externalRef),
	}
}

// matchesName reports whether the folded needle occurs in the English or localized name
func (k searchKeys) matchesName(needle string) bool {
	return strings.Contains(k.name, needle) || (k.localized != "" && strings.Contains(k.localized, needle))
}

// matchesAny also considers the external engine identifier
func (k searchKeys) matchesAny(needle string) bool {
	return k.matchesName(needle) || (k.externalRef != "" && strings.Contains(k.externalRef, needle))
}
