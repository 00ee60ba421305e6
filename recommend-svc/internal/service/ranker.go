package service

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"menurank/recommend-svc/internal/domain"
)

const (
	DefaultTopN   = 5
	DefaultJitter = 0.1
)

type Ranker struct {
	topN   int
	jitter float64
	source JitterSource
}

// NewRanker builds a ranker; a nil source uses a time-seeded generator.
func NewRanker(topN int, jitter float64, source JitterSource) *Ranker {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if jitter < 0 {
		jitter = DefaultJitter
	}
	if source == nil {
		source = newLockedRand(time.Now().UnixNano())
	}
	return &Ranker{topN: topN, jitter: jitter, source: source}
}

// Rank orders recommendations by score plus a uniform jitter in [0, jitter)
// and keeps the top N. The jitter only affects ordering; the recommendations
// themselves are returned untouched.
func (r *Ranker) Rank(recs []domain.ScoredRecommendation) []domain.ScoredRecommendation {
	type keyed struct {
		rec domain.ScoredRecommendation
		key float64
	}
	ordered := make([]keyed, len(recs))
	for i, rec := range recs {
		ordered[i] = keyed{rec: rec, key: rec.RecommendationScore + r.source.Float64()*r.jitter}
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].key > ordered[j].key })

	n := r.topN
	if len(ordered) < n {
		n = len(ordered)
	}
	out := make([]domain.ScoredRecommendation, n)
	for i := range out {
		out[i] = ordered[i].rec
	}
	return out
}

// lockedRand makes *rand.Rand safe for concurrent requests.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Float64()
}
