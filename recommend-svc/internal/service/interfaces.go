package service

import (
	"context"

	"menurank/recommend-svc/internal/domain"
)

type MenuSource interface {
	ListMenuItems(ctx context.Context, venue domain.Venue) ([]domain.MenuItemCandidate, error)
}

type FavoriteRepository interface {
	ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteDish, error)
	AddFavorite(ctx context.Context, fav *domain.FavoriteDish) error
	DeleteFavorite(ctx context.Context, userID string, id int) (int64, error)
}

// TasteAnalyzer is the language-model collaborator. Both calls are best effort:
// callers map any error to the neutral fallback.
type TasteAnalyzer interface {
	BuildTasteProfile(ctx context.Context, dishNames []string) (domain.TasteProfile, error)
	PredictCompatibility(ctx context.Context, dishNames []string, profile domain.TasteProfile, candidates []domain.MenuItemCandidate) (map[string]domain.Prediction, error)
}

type SessionStore interface {
	Save(ctx context.Context, session *domain.DiningSession) error
	Get(ctx context.Context, id string) (*domain.DiningSession, error)
	AddSelection(ctx context.Context, id string, sel domain.FriendSelection) (*domain.DiningSession, error)
}

type QRGenerator interface {
	Generate(url string) ([]byte, error)
}

// JitterSource yields values in [0,1) for tie diversification.
type JitterSource interface {
	Float64() float64
}

type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, req domain.Request) (*domain.Response, error)
	AnalyzeTaste(ctx context.Context, favorites []domain.FavoriteDish) (domain.TasteProfile, bool)
	Explain(rec domain.ScoredRecommendation) []domain.Factor
}

type FavoriteServiceInterface interface {
	List(ctx context.Context, userID string) ([]domain.FavoriteDish, error)
	Add(ctx context.Context, fav *domain.FavoriteDish) error
	Delete(ctx context.Context, userID string, id int) error
}

type SessionServiceInterface interface {
	Create(ctx context.Context, venue domain.Venue, hostName string) (*domain.DiningSession, error)
	Get(ctx context.Context, id string) (*domain.DiningSession, error)
	AddSelection(ctx context.Context, id string, sel domain.FriendSelection) (*domain.DiningSession, error)
	QRCode(ctx context.Context, id string) ([]byte, error)
}

var (
	_ RecommendationServiceInterface = (*RecommendationService)(nil)
	_ FavoriteServiceInterface       = (*FavoriteService)(nil)
	_ SessionServiceInterface        = (*SessionService)(nil)
)
