// Package ranking implements the lexical relevance-ranking engine.
//
// A raw query is expanded into its literal form plus Danish plural
// variants (Expand), every candidate is scored through a descending
// specificity cascade (Scorer), results are sorted ascending by rank
// (Rank), and shop results get a second business-rule and brand
// diversity pass (Adjuster).
//
// Ranks are integers where lower is better. The cascade is a linear
// scan over candidates, which is adequate at catalog sizes of a few
// thousand to tens of thousands of rows; there is no inverted index.
package ranking
