package catalog

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
)

var supportedLanguages = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// ResolveLanguage picks the display language for a request. An explicit
// choice wins; otherwise the Accept-Language header is matched. English is
// the fallback.
func ResolveLanguage(explicit, acceptLanguage string) string {
	if lang, ok := parseLanguage(explicit); ok {
		return lang
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return domain.LangEnglish
	}

	_, index, confidence := languageMatcher.Match(tags...)
	if confidence == language.No {
		return domain.LangEnglish
	}
	if supportedLanguages[index] == language.BrazilianPortuguese {
		return domain.LangPortuguese
	}
	return domain.LangEnglish
}

func parseLanguage(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case domain.LangPortuguese:
		return domain.LangPortuguese, true
	case domain.LangEnglish:
		return domain.LangEnglish, true
	}
	return "", false
}
