package service

import (
	"context"
	"strings"

	"menurank/logging"
	"menurank/recommend-svc/internal/domain"
	"menurank/recommend-svc/internal/metrics"
)

const (
	DefaultPredictionBatch     = 8
	DefaultPredictionThreshold = 70.0
)

// Predictions holds strong compatibility matches keyed by normalised dish name.
type Predictions map[string]domain.Prediction

func (p Predictions) Lookup(name string) (domain.Prediction, bool) {
	pred, ok := p[normalizeName(name)]
	return pred, ok
}

type Predictor struct {
	analyzer  TasteAnalyzer
	batch     int
	threshold float64
}

func NewPredictor(analyzer TasteAnalyzer, batch int, threshold float64) *Predictor {
	if batch <= 0 {
		batch = DefaultPredictionBatch
	}
	if threshold <= 0 {
		threshold = DefaultPredictionThreshold
	}
	return &Predictor{analyzer: analyzer, batch: batch, threshold: threshold}
}

// Predict scores the first batch of candidates in one analyzer call. Only
// entries naming a batch item and scoring above the threshold survive; an
// analyzer failure yields an empty map.
func (p *Predictor) Predict(ctx context.Context, candidates []domain.MenuItemCandidate, profile domain.TasteProfile, favorites []domain.FavoriteDish) Predictions {
	out := Predictions{}
	names := favoriteNames(favorites)
	if len(names) == 0 || len(candidates) == 0 || p.analyzer == nil {
		return out
	}

	batch := candidates
	if len(batch) > p.batch {
		batch = batch[:p.batch]
	}

	raw, err := p.analyzer.PredictCompatibility(ctx, names, profile, batch)
	if err != nil {
		metrics.CollaboratorFallbacks.WithLabelValues(metrics.StagePrediction).Inc()
		logging.Ctx(ctx).Warn().Err(err).Int("candidates", len(batch)).Msg("compatibility prediction unavailable")
		return out
	}

	inBatch := make(map[string]bool, len(batch))
	for _, item := range batch {
		inBatch[normalizeName(item.Name)] = true
	}

	for name, pred := range raw {
		key := normalizeName(name)
		if !inBatch[key] {
			continue
		}
		pred.Score = clamp(pred.Score, 0, 100)
		if pred.Score <= p.threshold {
			continue
		}
		out[key] = pred
	}
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
