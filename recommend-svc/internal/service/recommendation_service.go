package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"menurank/logging"
	"menurank/recommend-svc/internal/domain"
	"menurank/recommend-svc/internal/metrics"

	"golang.org/x/sync/errgroup"
)

const noMatchesMessage = "No menu items match your dietary restrictions"

type Options struct {
	TopN                int
	PredictionBatch     int
	PredictionThreshold float64
	Jitter              float64
	JitterSource        JitterSource
}

type RecommendationService struct {
	menu      MenuSource
	favorites FavoriteRepository
	sessions  SessionStore
	profiles  *ProfileBuilder
	predictor *Predictor
	ranker    *Ranker
}

// NewRecommendationService wires the pipeline. favorites and sessions may be
// nil, in which case requests rely on the favorites and friend selections
// they carry.
func NewRecommendationService(menu MenuSource, favorites FavoriteRepository, sessions SessionStore, analyzer TasteAnalyzer, opts Options) *RecommendationService {
	return &RecommendationService{
		menu:      menu,
		favorites: favorites,
		sessions:  sessions,
		profiles:  NewProfileBuilder(analyzer),
		predictor: NewPredictor(analyzer, opts.PredictionBatch, opts.PredictionThreshold),
		ranker:    NewRanker(opts.TopN, opts.Jitter, opts.JitterSource),
	}
}

func (s *RecommendationService) Recommend(ctx context.Context, req domain.Request) (*domain.Response, error) {
	start := time.Now()
	defer func() { metrics.PipelineDuration.Observe(time.Since(start).Seconds()) }()

	resp, err := s.recommend(ctx, req)
	if err != nil {
		metrics.RecommendationRequests.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.RecommendationRequests.WithLabelValues("ok").Inc()
	metrics.RecommendedItems.Observe(float64(len(resp.Recommendations)))
	return resp, nil
}

func (s *RecommendationService) recommend(ctx context.Context, req domain.Request) (*domain.Response, error) {
	if req.Venue.Ref() == "" {
		return nil, domain.ErrVenueRequired
	}

	menu, favorites, friends, err := s.gather(ctx, req)
	if err != nil {
		return nil, err
	}

	candidates := FilterDietary(menu, req.Restrictions)
	_, venueMatch := MatchVenueFavorites(req.Venue, favorites)
	resp := &domain.Response{
		Venue:           req.Venue,
		Recommendations: []domain.ScoredRecommendation{},
		TotalCandidates: len(menu),
		FilteredCount:   len(candidates),
		VenueMatch:      venueMatch,
	}
	if venueMatch == domain.VenueMatchApproximate {
		logging.Ctx(ctx).Debug().Str("venue", req.Venue.Name).Msg("restaurant favorites matched by name only")
	}
	if len(candidates) == 0 {
		resp.Message = noMatchesMessage
		return resp, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	profile, _ := s.profiles.Build(ctx, favorites)
	resp.TasteProfile = profile

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	predictions := s.predictor.Predict(ctx, candidates, profile, favorites)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sc := NewScoringContext(req.Venue, req.Context, favorites, friends, predictions)
	ec := NewExplainContext(sc, menu)

	scored := make([]domain.ScoredRecommendation, 0, len(candidates))
	for _, item := range candidates {
		scored = append(scored, toRecommendation(ScoreItem(item, sc), ec))
	}
	resp.Recommendations = s.ranker.Rank(scored)

	logging.Ctx(ctx).Info().
		Str("venue", req.Venue.Ref()).
		Int("menu_items", len(menu)).
		Int("candidates", len(candidates)).
		Int("predictions", len(predictions)).
		Int("returned", len(resp.Recommendations)).
		Msg("recommendations ranked")
	return resp, nil
}

// gather loads the menu snapshot, stored favorites and session selections concurrently.
func (s *RecommendationService) gather(ctx context.Context, req domain.Request) ([]domain.MenuItemCandidate, []domain.FavoriteDish, []domain.FriendSelection, error) {
	var (
		menu    []domain.MenuItemCandidate
		stored  []domain.FavoriteDish
		session *domain.DiningSession
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.menu.ListMenuItems(gctx, req.Venue)
		if err != nil {
			return fmt.Errorf("failed to load menu: %w", err)
		}
		menu = items
		return nil
	})
	if s.favorites != nil && req.UserID != "" {
		g.Go(func() error {
			favs, err := s.favorites.ListFavorites(gctx, req.UserID)
			if err != nil {
				return fmt.Errorf("failed to load favorites: %w", err)
			}
			stored = favs
			return nil
		})
	}
	if s.sessions != nil && req.SessionID != "" {
		g.Go(func() error {
			sess, err := s.sessions.Get(gctx, req.SessionID)
			if err != nil {
				// friend picks only add an informational boost
				logging.Ctx(ctx).Warn().Err(err).Str("session", req.SessionID).Msg("dining session unavailable")
				return nil
			}
			session = sess
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	friends := req.FriendSelections
	if session != nil {
		if session.Venue.Ref() == req.Venue.Ref() {
			friends = append(append([]domain.FriendSelection{}, friends...), session.FriendsOf(req.UserID)...)
		} else {
			logging.Ctx(ctx).Warn().Str("session", session.ID).Msg("dining session belongs to another venue")
		}
	}
	return menu, mergeFavorites(req.Favorites, stored), friends, nil
}

func mergeFavorites(lists ...[]domain.FavoriteDish) []domain.FavoriteDish {
	seen := make(map[string]bool)
	var out []domain.FavoriteDish
	for _, list := range lists {
		for _, fav := range list {
			key := normalizeName(fav.DishName) + "\x00" + normalizeName(fav.RestaurantRef)
			if fav.DishName == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, fav)
		}
	}
	return out
}

func toRecommendation(score ItemScore, ec ExplainContext) domain.ScoredRecommendation {
	rec := domain.ScoredRecommendation{
		MenuItemCandidate:    score.Item,
		RecommendationScore:  score.Total,
		ScoreBreakdown:       score.Breakdown,
		RecommendationReason: strings.Join(ComposeReasons(score, ec), ReasonSeparator),
		FriendRecommendation: score.FriendNote,
		TasteReasoning:       FallbackTasteReasoning,
	}
	if score.Prediction != nil && score.Prediction.Reasoning != "" {
		rec.TasteReasoning = score.Prediction.Reasoning
	}
	return rec
}

// AnalyzeTaste builds a taste profile on its own; the flag is false when the
// neutral fallback was returned.
func (s *RecommendationService) AnalyzeTaste(ctx context.Context, favorites []domain.FavoriteDish) (domain.TasteProfile, bool) {
	return s.profiles.Build(ctx, favorites)
}

func (s *RecommendationService) Explain(rec domain.ScoredRecommendation) []domain.Factor {
	return ExplainFactors(rec)
}

// IsCanceled reports whether err came from the caller abandoning the request.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
