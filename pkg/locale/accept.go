package locale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps the header size we are willing to parse.
const maxAcceptLanguageLength = 4096

type weightedLanguage struct {
	lang string
	q    float64
}

func parseAcceptLanguage(header string) []weightedLanguage {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var out []weightedLanguage
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		fields := strings.Split(part, ";")
		lang := strings.ToLower(strings.TrimSpace(fields[0]))
		if lang == "" || lang == "*" {
			continue
		}

		q := 1.0
		if len(fields) > 1 {
			qPart := strings.TrimSpace(fields[1])
			if v, ok := strings.CutPrefix(qPart, "q="); ok {
				if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
					q = parsed
				}
			}
		}
		out = append(out, weightedLanguage{lang: lang, q: q})
	}

	// stable: equal weights keep header order
	slices.SortStableFunc(out, func(a, b weightedLanguage) int {
		return cmp.Compare(b.q, a.q)
	})
	return out
}

// FromAcceptLanguage picks the best supported language code from an
// Accept-Language header. Exact matches are tried before base-language
// matches ("nb-NO" -> "nb"). Returns "" when nothing matches, so the
// result can feed Query.Language directly.
func FromAcceptLanguage(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}

	supported := SupportedLanguages()
	langs := parseAcceptLanguage(header)

	for _, l := range langs {
		if slices.Contains(supported, l.lang) {
			return l.lang
		}
	}
	for _, l := range langs {
		if base, _, ok := strings.Cut(l.lang, "-"); ok && slices.Contains(supported, base) {
			return base
		}
	}
	return ""
}
