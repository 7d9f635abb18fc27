package ranking

import "sort"

// Scored pairs a candidate with its cascade rank.
type Scored[T Candidate] struct {
	Candidate T
	Rank      int
}

// RankOptions controls how the linear scan treats edge candidates.
type RankOptions struct {
	// KeepUnsearchable keeps candidates without any searchable text
	// at the bottom of the result instead of dropping them. Food
	// search keeps them; shop search drops them.
	KeepUnsearchable bool
}

// Rank scores every candidate against the query, drops non-matches,
// stable-sorts ascending by rank and truncates to limit. Ties keep
// their input order. A limit of zero or less means no truncation.
//
// The scan is O(n·m) in candidates and query words, which is the
// deliberate trade at catalog sizes in the low tens of thousands.
func Rank[T Candidate](s *Scorer, q Query, candidates []T, limit int, opts RankOptions) []Scored[T] {
	if q.IsEmpty() {
		return []Scored[T]{}
	}

	scored := make([]Scored[T], 0, len(candidates))
	for _, c := range candidates {
		rank, ok := s.Score(q, c)
		if !ok {
			continue
		}
		if rank == RankUnsearchable && !opts.KeepUnsearchable {
			continue
		}
		scored = append(scored, Scored[T]{Candidate: c, Rank: rank})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Rank < scored[j].Rank
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
