package ranking

import (
	"math"
	"strings"
)

// RankUnsearchable is assigned to candidates with no searchable text.
// They sort after every real match but are still "matched" so that
// callers which keep everything never error on thin records.
const RankUnsearchable = math.MaxInt

// Candidate is the minimal searchable surface of a record.
// FoodItem and Product both satisfy it.
type Candidate interface {
	// SearchName returns the primary name text.
	SearchName() string

	// SearchCategory returns the optional category text.
	SearchCategory() string
}

// Weights holds the tier bases and steps of the match cascade.
// Only the strict ordering among tiers is contractual; the numbers
// just have to keep the tiers apart at realistic word counts.
type Weights struct {
	// ExactName is the base rank for a full-name match.
	ExactName int

	// ExactCategory is the base rank for a full-category match.
	ExactCategory int

	// NameWord is the base rank for a single word of the name
	// matching exactly; the word's position adds PositionStep each.
	NameWord int

	// CategoryWord is the base rank for a single category word
	// matching exactly, position weighted like NameWord.
	CategoryWord int

	// WordSuffix is the base rank for a word ending with the query.
	// Suffix beats prefix: "kniv" end-matching "køkkenkniv" is a
	// root match in Danish compounds.
	WordSuffix int

	// WordPrefix is the base rank for a word starting with the query.
	WordPrefix int

	// Substring is the base rank for the query appearing anywhere in
	// the full name or category.
	Substring int

	// PositionStep is added per word position in word tiers.
	PositionStep int

	// SubQueryPenalty is added per sub-word position when a
	// multi-word query only matches through one of its words.
	SubQueryPenalty int
}

// DefaultWeights returns the stock cascade constants.
func DefaultWeights() Weights {
	return Weights{
		ExactName:       0,
		ExactCategory:   20,
		NameWord:        100,
		CategoryWord:    2000,
		WordSuffix:      10000,
		WordPrefix:      12000,
		Substring:       14000,
		PositionStep:    10,
		SubQueryPenalty: 500,
	}
}

// Config bundles the locale rules and weights the engine runs with.
// Passed in at construction so tests can vary the rule set.
type Config struct {
	// PluralSuffixes are the suffix concatenation rules; nil selects
	// the Danish defaults ("er", "e").
	PluralSuffixes []string

	// Weights are the cascade tier values; the zero value selects
	// DefaultWeights.
	Weights Weights
}

// DefaultConfig returns the stock engine configuration.
func DefaultConfig() Config {
	return Config{Weights: DefaultWeights()}
}

// Scorer computes integer match ranks through the specificity cascade.
// Stateless and safe for concurrent use.
type Scorer struct {
	cfg Config
}

// NewScorer creates a scorer with the given configuration.
func NewScorer(cfg Config) *Scorer {
	if cfg.Weights == (Weights{}) {
		cfg.Weights = DefaultWeights()
	}
	return &Scorer{cfg: cfg}
}

// Expand normalises a raw query with the scorer's plural rules.
func (s *Scorer) Expand(query string) Query {
	return Expand(query, s.cfg.PluralSuffixes)
}

// candidateText is the pre-split view of one candidate's fields.
type candidateText struct {
	name      string
	nameLower string
	nameWords []string

	category      string
	categoryLower string
	categoryWords []string
}

func splitCandidate(c Candidate) candidateText {
	t := candidateText{
		name:     c.SearchName(),
		category: c.SearchCategory(),
	}
	t.nameLower = strings.ToLower(t.name)
	t.categoryLower = strings.ToLower(t.category)
	t.nameWords = strings.Fields(t.name)
	t.categoryWords = strings.Fields(t.category)
	return t
}

// matches reports whether the variant equals the given word,
// respecting the variant's case mode.
func (v variant) matches(word string) bool {
	if v.caseSensitive {
		return word == v.text
	}
	return strings.ToLower(word) == v.text
}

func (v variant) suffixOf(word string) bool {
	if v.caseSensitive {
		return strings.HasSuffix(word, v.text)
	}
	return strings.HasSuffix(strings.ToLower(word), v.text)
}

func (v variant) prefixOf(word string) bool {
	if v.caseSensitive {
		return strings.HasPrefix(word, v.text)
	}
	return strings.HasPrefix(strings.ToLower(word), v.text)
}

// containedIn checks the full raw and lowered text of a field.
func (v variant) containedIn(raw, lower string) bool {
	if v.caseSensitive {
		return strings.Contains(raw, v.text)
	}
	return strings.Contains(lower, v.text)
}

// Score runs the cascade for one query against one candidate and
// returns the match rank; lower is better. The second return is false
// when nothing in the cascade matched. Never errors: a candidate with
// no searchable text at all scores RankUnsearchable and stays matched.
//
// Tiers are evaluated top to bottom and the first success wins. Every
// variant (case-sensitive, case-insensitive, plural forms) is tried
// within a tier before the cascade moves on; collapsing that ordering
// changes result ordering and is a regression.
func (s *Scorer) Score(q Query, c Candidate) (int, bool) {
	if q.IsEmpty() {
		return 0, false
	}

	t := splitCandidate(c)
	if t.name == "" && t.category == "" {
		return RankUnsearchable, true
	}

	if rank, ok := s.scoreSingle(q, t); ok {
		return rank, true
	}

	// Multi-word fallback: retry each single word against the full
	// candidate, last word first, penalised by its retry position so
	// a direct full-query match always wins.
	w := s.cfg.Weights
	best := 0
	found := false
	for pos, sub := range q.SubWords {
		subQuery := Expand(sub, s.cfg.PluralSuffixes)
		rank, ok := s.scoreSingle(subQuery, t)
		if !ok {
			continue
		}
		rank += w.SubQueryPenalty * (pos + 1)
		if !found || rank < best {
			best = rank
			found = true
		}
	}
	if found {
		return best, true
	}

	return 0, false
}

// scoreSingle evaluates the cascade tiers that do not recurse into
// sub-words.
func (s *Scorer) scoreSingle(q Query, t candidateText) (int, bool) {
	w := s.cfg.Weights

	// Full name equals the query.
	if t.name != "" {
		for _, v := range q.variants {
			if v.matches(t.name) {
				return w.ExactName + v.offset, true
			}
		}
	}

	// Full category equals the query or a plural variant.
	if t.category != "" {
		for _, v := range q.variants {
			if v.matches(t.category) {
				return w.ExactCategory + v.offset, true
			}
		}
	}

	// A word of the name equals the query; earlier words are
	// stronger matches.
	if rank, ok := wordTier(q, t.nameWords, w.NameWord, w.PositionStep); ok {
		return rank, true
	}

	// A word of the category equals the query.
	if rank, ok := wordTier(q, t.categoryWords, w.CategoryWord, w.PositionStep); ok {
		return rank, true
	}

	// A word of the name or category ends with the query.
	if rank, ok := affixTier(q, t, w.WordSuffix, variant.suffixOf); ok {
		return rank, true
	}

	// A word of the name or category starts with the query.
	if rank, ok := affixTier(q, t, w.WordPrefix, variant.prefixOf); ok {
		return rank, true
	}

	// The query appears anywhere in the full name or category.
	for _, v := range q.variants {
		if v.containedIn(t.name, t.nameLower) || v.containedIn(t.category, t.categoryLower) {
			return w.Substring + v.offset, true
		}
	}

	return 0, false
}

// wordTier finds the first word matching any variant. Words are
// scanned in order so the position step dominates and the variant
// offset only breaks ties within one word.
func wordTier(q Query, words []string, base, step int) (int, bool) {
	for i, word := range words {
		for _, v := range q.variants {
			if v.matches(word) {
				return base + i*step + v.offset, true
			}
		}
	}
	return 0, false
}

// affixTier checks name words then category words against one affix
// predicate.
func affixTier(q Query, t candidateText, base int, pred func(variant, string) bool) (int, bool) {
	for _, v := range q.variants {
		for _, word := range t.nameWords {
			if pred(v, word) {
				return base + v.offset, true
			}
		}
		for _, word := range t.categoryWords {
			if pred(v, word) {
				return base + v.offset, true
			}
		}
	}
	return 0, false
}
