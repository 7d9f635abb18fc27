package ranking

import "strings"

// Default Danish plural suffixes, e.g. "bog" -> "boger", "vin" -> "vine".
// Intentionally simplistic suffix concatenation, not true morphology.
var defaultPluralSuffixes = []string{"er", "e"}

// Query is the expanded form of a raw search query.
type Query struct {
	// Literal is the query exactly as the caller supplied it.
	Literal string

	// SubWords holds the single words of a multi-word query in
	// reverse order, so the last word is tried first during fallback
	// matching. Empty for single-word queries.
	SubWords []string

	// variants are the comparison forms in strict priority order:
	// literal case-sensitive, literal case-insensitive, then one
	// case-insensitive form per plural rule.
	variants []variant
}

// variant is one comparison form of a query.
type variant struct {
	// text is the needle. Already lower-cased unless caseSensitive.
	text string

	// caseSensitive selects whether the candidate side is compared
	// raw or lower-cased.
	caseSensitive bool

	// offset is added to the tier base so stronger variants rank
	// lower. Must stay below the cascade's position step.
	offset int
}

// IsEmpty reports whether the query has no searchable text.
func (q Query) IsEmpty() bool {
	return strings.TrimSpace(q.Literal) == ""
}

// Expand builds the normalised query for a raw input string using the
// given plural suffix rules. Pure and deterministic.
//
// Multi-word queries additionally get their words split out, trimmed
// and reversed; the rightmost word is assumed the most specific for
// Danish compound grammar ("frisk basilikum" is about basilikum).
func Expand(query string, pluralSuffixes []string) Query {
	if pluralSuffixes == nil {
		pluralSuffixes = defaultPluralSuffixes
	}

	q := Query{Literal: query}
	if q.IsEmpty() {
		return q
	}

	lower := strings.ToLower(query)
	q.variants = append(q.variants,
		variant{text: query, caseSensitive: true, offset: 0},
		variant{text: lower, caseSensitive: false, offset: 1},
	)

	offset := 2
	for _, suffix := range pluralSuffixes {
		q.variants = append(q.variants, variant{text: lower + suffix, offset: offset})
		offset++
	}

	// Words ending in "-el" pluralise by contraction rather than a
	// plain suffix: kartoffel -> kartofler, cykel -> cykler. The
	// doubled consonant collapses when present.
	if contracted, ok := elContraction(lower); ok {
		q.variants = append(q.variants, variant{text: contracted, offset: offset})
	}

	if strings.ContainsRune(strings.TrimSpace(query), ' ') {
		fields := strings.Fields(query)
		q.SubWords = make([]string, 0, len(fields))
		for i := len(fields) - 1; i >= 0; i-- {
			q.SubWords = append(q.SubWords, fields[i])
		}
	}

	return q
}

// elContraction derives the contracted "-el" plural of a word:
// the "e" of the final "el" drops and a doubled consonant before it
// collapses, then "er" is appended. Returns false when the word does
// not end in "el".
func elContraction(word string) (string, bool) {
	if len(word) < 4 || !strings.HasSuffix(word, "el") {
		return "", false
	}
	stem := word[:len(word)-2]
	if len(stem) >= 2 && stem[len(stem)-1] == stem[len(stem)-2] {
		stem = stem[:len(stem)-1]
	}
	return stem + "ler", true
}
