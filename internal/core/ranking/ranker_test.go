package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankAll(t *testing.T, query string, candidates []testCandidate, limit int, opts RankOptions) []Scored[testCandidate] {
	t.Helper()
	s := NewScorer(DefaultConfig())
	return Rank(s, s.Expand(query), candidates, limit, opts)
}

func TestRank_OrdersAscendingByRank(t *testing.T) {
	candidates := []testCandidate{
		{name: "lommekniven"},            // substring
		{name: "kniv"},                   // exact
		{name: "godt knivsæt"},           // prefix
		{name: "flot kniv"},              // word position 1
		{name: "Mega sej køkkenkniv"},    // suffix
		{name: "grydeske", category: ""}, // no match
	}

	results := rankAll(t, "kniv", candidates, 0, RankOptions{})

	require.Len(t, results, 5)
	assert.Equal(t, "kniv", results[0].Candidate.name)
	assert.Equal(t, "flot kniv", results[1].Candidate.name)
	assert.Equal(t, "Mega sej køkkenkniv", results[2].Candidate.name)
	assert.Equal(t, "godt knivsæt", results[3].Candidate.name)
	assert.Equal(t, "lommekniven", results[4].Candidate.name)

	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].Rank, results[i].Rank)
	}
}

func TestRank_TruncatesToLimit(t *testing.T) {
	candidates := []testCandidate{
		{name: "kniv"},
		{name: "flot kniv"},
		{name: "Mega sej køkkenkniv"},
	}

	results := rankAll(t, "kniv", candidates, 2, RankOptions{})

	assert.Len(t, results, 2)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	candidates := []testCandidate{
		{name: "kniv", category: "a"},
		{name: "kniv", category: "b"},
		{name: "kniv", category: "c"},
	}

	results := rankAll(t, "kniv", candidates, 0, RankOptions{})

	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].Candidate.category)
	assert.Equal(t, "b", results[1].Candidate.category)
	assert.Equal(t, "c", results[2].Candidate.category)
}

func TestRank_DropsUnsearchableByDefault(t *testing.T) {
	candidates := []testCandidate{
		{name: "kniv"},
		{},
	}

	results := rankAll(t, "kniv", candidates, 0, RankOptions{})

	assert.Len(t, results, 1)
}

func TestRank_KeepUnsearchableSortsLast(t *testing.T) {
	candidates := []testCandidate{
		{},
		{name: "kniv"},
	}

	results := rankAll(t, "kniv", candidates, 0, RankOptions{KeepUnsearchable: true})

	require.Len(t, results, 2)
	assert.Equal(t, "kniv", results[0].Candidate.name)
	assert.Equal(t, RankUnsearchable, results[1].Rank)
}

func TestRank_EmptyQueryReturnsEmpty(t *testing.T) {
	candidates := []testCandidate{{name: "kniv"}}

	results := rankAll(t, "", candidates, 0, RankOptions{})

	assert.Empty(t, results)
}

func TestRank_EmptyCandidates(t *testing.T) {
	results := rankAll(t, "kniv", nil, 10, RankOptions{})

	assert.Empty(t, results)
}
