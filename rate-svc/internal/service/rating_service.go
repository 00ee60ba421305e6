package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"menurank/logging"
	"menurank/rate-svc/internal/domain"
)

type RatingService struct {
	repository RatingRepository
	cache      RatingCache
	publisher  RatingPublisher
	now        func() time.Time
}

func NewRatingService(repository RatingRepository, cache RatingCache, publisher RatingPublisher) *RatingService {
	return &RatingService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		now:        time.Now,
	}
}

// CreateOrUpdate stores a diner's rating of a dish. A second rating of the
// same dish inside the marker window is rejected; after it the stored rating
// is overwritten. Every stored rating is published for aggregation.
func (s *RatingService) CreateOrUpdate(ctx context.Context, rating *domain.Rating) error {
	rating.RestaurantRef = strings.TrimSpace(rating.RestaurantRef)
	rating.DishName = strings.TrimSpace(rating.DishName)

	onMenu, err := s.repository.DishOnMenu(ctx, rating.RestaurantRef, rating.DishName)
	if err != nil {
		return fmt.Errorf("failed to validate dish: %w", err)
	}
	if !onMenu {
		return domain.ErrDishNotOnMenu
	}

	markerKey := s.cache.RatingMarkerKey(rating)
	exists, err := s.cache.Exists(ctx, markerKey)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", markerKey).Msg("rating marker lookup failed")
	}
	if exists {
		return domain.ErrDuplicateRating
	}

	existingID, err := s.repository.GetExistingRatingID(ctx, rating)
	switch {
	case err == nil && existingID > 0:
		if err := s.repository.UpdateRating(ctx, existingID, rating); err != nil {
			return fmt.Errorf("failed to update rating: %w", err)
		}
		rating.ID = existingID
	case err == nil || errors.Is(err, sql.ErrNoRows):
		if err := s.repository.InsertRating(ctx, rating); err != nil {
			return fmt.Errorf("failed to insert rating: %w", err)
		}
	default:
		return fmt.Errorf("failed to check existing rating: %w", err)
	}

	if err := s.cache.SetMarker(ctx, markerKey); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", markerKey).Msg("failed to cache rating marker")
	}

	if s.publisher != nil {
		event := domain.RatingEvent{
			Type:          domain.EventDishRated,
			RestaurantRef: rating.RestaurantRef,
			DishName:      rating.DishName,
			UserID:        rating.UserID,
			Rating:        rating.Rating,
			Timestamp:     s.now().UTC(),
		}
		if err := s.publisher.PublishRating(ctx, event); err != nil {
			logging.Ctx(ctx).Error().Err(err).Str("dish", rating.DishName).Msg("failed to publish rating")
		}
	}

	logging.Ctx(ctx).Info().
		Int("rating_id", rating.ID).
		Str("restaurant_ref", rating.RestaurantRef).
		Str("dish", rating.DishName).
		Msg("rating stored")
	return nil
}

func (s *RatingService) ListDishRatings(ctx context.Context, restaurantRef, dishName string) ([]domain.Rating, error) {
	return s.repository.ListDishRatings(ctx, restaurantRef, dishName)
}

func (s *RatingService) Distribution(ctx context.Context, restaurantRef string) (map[string]int, error) {
	return s.repository.RatingDistribution(ctx, restaurantRef)
}
