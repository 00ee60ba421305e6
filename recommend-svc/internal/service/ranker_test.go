package service_test

import (
	"testing"

	"menurank/recommend-svc/internal/domain"
	"menurank/recommend-svc/internal/service"

	"github.com/stretchr/testify/assert"
)

// fixedJitter replays values in order and then repeats the last one.
type fixedJitter struct {
	values []float64
	i      int
}

func (f *fixedJitter) Float64() float64 {
	if len(f.values) == 0 {
		return 0
	}
	v := f.values[f.i]
	if f.i < len(f.values)-1 {
		f.i++
	}
	return v
}

func scored(name string, score float64) domain.ScoredRecommendation {
	return domain.ScoredRecommendation{MenuItemCandidate: domain.MenuItemCandidate{Name: name}, RecommendationScore: score}
}

func recNames(recs []domain.ScoredRecommendation) []string {
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[i] = rec.Name
	}
	return out
}

func TestRanker_Rank(t *testing.T) {
	recs := []domain.ScoredRecommendation{
		scored("A", 10), scored("B", 80), scored("C", 40), scored("D", 55),
		scored("E", 20), scored("F", 70), scored("G", 30),
	}

	got := service.NewRanker(5, 0.1, &fixedJitter{values: []float64{0}}).Rank(recs)

	assert.Equal(t, []string{"B", "F", "D", "C", "G"}, recNames(got))
}

func TestRanker_JitterBreaksNearTies(t *testing.T) {
	recs := []domain.ScoredRecommendation{scored("A", 50), scored("B", 50.05)}

	got := service.NewRanker(5, 0.1, &fixedJitter{values: []float64{0.9, 0}}).Rank(recs)

	assert.Equal(t, []string{"A", "B"}, recNames(got))
	assert.Equal(t, 50.0, got[0].RecommendationScore, "jitter must not leak into the score")
}

func TestRanker_JitterCannotJumpClearGaps(t *testing.T) {
	recs := []domain.ScoredRecommendation{scored("low", 49.8), scored("high", 50)}

	got := service.NewRanker(5, 0.1, &fixedJitter{values: []float64{0.99, 0}}).Rank(recs)

	assert.Equal(t, []string{"high", "low"}, recNames(got))
}

func TestRanker_FewerThanTopN(t *testing.T) {
	got := service.NewRanker(0, 0.1, nil).Rank([]domain.ScoredRecommendation{scored("only", 1)})
	assert.Equal(t, []string{"only"}, recNames(got))

	assert.Empty(t, service.NewRanker(5, 0.1, nil).Rank(nil))
}
