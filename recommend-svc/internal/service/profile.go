package service

import (
	"context"
	"strings"

	"menurank/logging"
	"menurank/recommend-svc/internal/domain"
	"menurank/recommend-svc/internal/metrics"
)

type ProfileBuilder struct {
	analyzer TasteAnalyzer
}

func NewProfileBuilder(analyzer TasteAnalyzer) *ProfileBuilder {
	return &ProfileBuilder{analyzer: analyzer}
}

// Build asks the analyzer for a taste profile. It never fails: no favorites,
// an analyzer error or an empty answer all yield the empty profile, and the
// boolean reports whether the profile came from the analyzer.
func (b *ProfileBuilder) Build(ctx context.Context, favorites []domain.FavoriteDish) (domain.TasteProfile, bool) {
	names := favoriteNames(favorites)
	if len(names) == 0 || b.analyzer == nil {
		return domain.TasteProfile{}, false
	}

	profile, err := b.analyzer.BuildTasteProfile(ctx, names)
	if err != nil {
		metrics.CollaboratorFallbacks.WithLabelValues(metrics.StageProfile).Inc()
		logging.Ctx(ctx).Warn().Err(err).Int("favorites", len(names)).Msg("taste profile unavailable, using neutral profile")
		return domain.TasteProfile{}, false
	}
	if profile.IsEmpty() {
		return domain.TasteProfile{}, false
	}
	return profile, true
}

func favoriteNames(favorites []domain.FavoriteDish) []string {
	names := make([]string, 0, len(favorites))
	for _, fav := range favorites {
		if name := strings.TrimSpace(fav.DishName); name != "" {
			names = append(names, name)
		}
	}
	return names
}
