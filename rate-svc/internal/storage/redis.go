package storage

import (
	"context"
	"strings"
	"time"

	"menurank/rate-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const ratedKeyPrefix = "rated:"

// RatingMarkers remembers who rated which dish so a diner cannot rate the
// same dish twice inside the window. Each marker holds the UTC time of the
// rating it guards.
type RatingMarkers struct {
	client *redis.Client
	window time.Duration
	now    func() time.Time
}

func NewRatingMarkers(client *redis.Client, window time.Duration) *RatingMarkers {
	return &RatingMarkers{client: client, window: window, now: time.Now}
}

// RatingMarkerKey is rated:<venue>:<dish>:<user>, with the dish name lower
// cased and its whitespace collapsed so "Pad  Thai" and "pad thai" collide.
func (m *RatingMarkers) RatingMarkerKey(rating *domain.Rating) string {
	dish := strings.Join(strings.Fields(strings.ToLower(rating.DishName)), " ")
	return ratedKeyPrefix + strings.TrimSpace(rating.RestaurantRef) + ":" + dish + ":" + rating.UserID
}

func (m *RatingMarkers) Exists(ctx context.Context, key string) (bool, error) {
	n, err := m.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// SetMarker opens the window for key. A marker that is already present keeps
// its original timestamp and expiry.
func (m *RatingMarkers) SetMarker(ctx context.Context, key string) error {
	ratedAt := m.now().UTC().Format(time.RFC3339)
	return m.client.SetNX(ctx, key, ratedAt, m.window).Err()
}
