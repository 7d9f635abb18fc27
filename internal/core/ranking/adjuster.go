package ranking

import (
	"sort"
	"strings"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
)

// AdjusterConfig holds the business-rule deltas applied to an already
// ranked shop result set. Positive values are the magnitude; whether a
// rule boosts or penalises is fixed per rule.
type AdjusterConfig struct {
	// InStockBoost lowers the rank of available products.
	InStockBoost int

	// DiscountBoost lowers the rank of actively discounted products.
	DiscountBoost int

	// CategoryBoost lowers the rank of products in a configured
	// boost category.
	CategoryBoost int

	// PositiveTagBoost lowers the rank of products whose name or
	// category contains a configured positive tag.
	PositiveTagBoost int

	// NegativeTagPenalty raises the rank of products whose name or
	// category contains a configured negative tag.
	NegativeTagPenalty int

	// MissingFieldPenalty raises the rank once per missing brand,
	// category and description.
	MissingFieldPenalty int

	// BrandPenaltyStep is multiplied by the running occurrence count
	// once a brand repeats beyond BrandFreeCount. Kept configurable;
	// the default of 500 was never validated as a good value.
	BrandPenaltyStep int

	// BrandFreeCount is how many results a brand may occupy before
	// the diversity penalty starts.
	BrandFreeCount int
}

// DefaultAdjusterConfig returns the stock adjustment constants.
func DefaultAdjusterConfig() AdjusterConfig {
	return AdjusterConfig{
		InStockBoost:        100,
		DiscountBoost:       100,
		CategoryBoost:       1000,
		PositiveTagBoost:    1000,
		NegativeTagPenalty:  1000,
		MissingFieldPenalty: 200,
		BrandPenaltyStep:    500,
		BrandFreeCount:      2,
	}
}

// Rule is one business adjustment: when Applies reports true for a
// product, Delta is added to its rank. Negative deltas boost.
// Rules are data so shop policy changes without new code branches.
type Rule struct {
	Name    string
	Applies func(domain.Product) bool
	Delta   int
}

// Adjuster applies business-rule deltas and a brand diversity pass to
// a ranked, size-bounded shop result set.
type Adjuster struct {
	cfg   AdjusterConfig
	rules []Rule
}

// NewAdjuster builds the rule list from the configuration and the
// shop settings' tag and category terms.
func NewAdjuster(cfg AdjusterConfig, settings domain.ShopSettings) *Adjuster {
	if cfg == (AdjusterConfig{}) {
		cfg = DefaultAdjusterConfig()
	}

	rules := []Rule{
		{
			Name:    "in-stock",
			Applies: func(p domain.Product) bool { return p.InStock },
			Delta:   -cfg.InStockBoost,
		},
		{
			Name:    "discount",
			Applies: domain.Product.HasDiscount,
			Delta:   -cfg.DiscountBoost,
		},
		{
			Name:    "boost-category",
			Applies: containsAnyTerm(settings.BoostCategories, categoryText),
			Delta:   -cfg.CategoryBoost,
		},
		{
			Name:    "positive-tag",
			Applies: containsAnyTerm(settings.PositiveTags, titleAndCategoryText),
			Delta:   -cfg.PositiveTagBoost,
		},
		{
			Name:    "negative-tag",
			Applies: containsAnyTerm(settings.NegativeTags, titleAndCategoryText),
			Delta:   cfg.NegativeTagPenalty,
		},
		{
			Name:    "missing-brand",
			Applies: func(p domain.Product) bool { return p.Brand == "" },
			Delta:   cfg.MissingFieldPenalty,
		},
		{
			Name:    "missing-category",
			Applies: func(p domain.Product) bool { return p.Category == "" },
			Delta:   cfg.MissingFieldPenalty,
		},
		{
			Name:    "missing-description",
			Applies: func(p domain.Product) bool { return p.Description == "" },
			Delta:   cfg.MissingFieldPenalty,
		},
	}

	return &Adjuster{cfg: cfg, rules: rules}
}

// Adjust applies the business rules, re-sorts, runs the brand
// diversity pass in the new order and re-sorts again. The slice is
// modified in place and returned for convenience.
func (a *Adjuster) Adjust(matches []domain.ProductMatch) []domain.ProductMatch {
	for i := range matches {
		for _, rule := range a.rules {
			if rule.Applies(matches[i].Product) {
				matches[i].Rank += rule.Delta
			}
		}
	}
	sortMatches(matches)

	// Brand pass runs on the adjusted order: once a brand holds
	// BrandFreeCount slots, every further occurrence is pushed down
	// by step × occurrences-so-far, so diversity degrades gracefully
	// instead of capping hard. Products without a brand are exempt.
	seen := make(map[string]int)
	for i := range matches {
		brand := strings.ToLower(matches[i].Product.Brand)
		if brand == "" {
			continue
		}
		if seen[brand] >= a.cfg.BrandFreeCount {
			matches[i].Rank += a.cfg.BrandPenaltyStep * seen[brand]
		}
		seen[brand]++
	}
	sortMatches(matches)

	return matches
}

func sortMatches(matches []domain.ProductMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Rank < matches[j].Rank
	})
}

// containsAnyTerm builds a predicate that reports whether any of the
// configured terms appears in the product text selected by extract.
// Comparison is case-insensitive on both sides.
func containsAnyTerm(terms []string, extract func(domain.Product) string) func(domain.Product) bool {
	lowered := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			lowered = append(lowered, term)
		}
	}
	return func(p domain.Product) bool {
		if len(lowered) == 0 {
			return false
		}
		text := strings.ToLower(extract(p))
		for _, term := range lowered {
			if strings.Contains(text, term) {
				return true
			}
		}
		return false
	}
}

func categoryText(p domain.Product) string {
	return p.Category
}

func titleAndCategoryText(p domain.Product) string {
	return p.Name + " " + p.Category
}
