package storage

import (
	"context"
	"testing"
	"time"

	"menurank/rate-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMarkers(t *testing.T, window time.Duration) (*RatingMarkers, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRatingMarkers(client, window), mr
}

func TestRatingMarkers_Key(t *testing.T) {
	markers, _ := newTestMarkers(t, time.Hour)

	tests := []struct {
		name   string
		rating domain.Rating
		want   string
	}{
		{
			name:   "lower cased dish",
			rating: domain.Rating{RestaurantRef: "R1", DishName: "Pad Thai", UserID: "u1"},
			want:   "rated:R1:pad thai:u1",
		},
		{
			name:   "collapsed whitespace",
			rating: domain.Rating{RestaurantRef: " R1 ", DishName: "  Pad   Thai ", UserID: "u1"},
			want:   "rated:R1:pad thai:u1",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, markers.RatingMarkerKey(&testCase.rating))
		})
	}
}

func TestRatingMarkers_Window(t *testing.T) {
	markers, mr := newTestMarkers(t, 24*time.Hour)
	ratedAt := time.Date(2024, 3, 1, 18, 30, 0, 0, time.FixedZone("CET", 3600))
	markers.now = func() time.Time { return ratedAt }
	ctx := context.Background()
	key := markers.RatingMarkerKey(&domain.Rating{RestaurantRef: "R1", DishName: "Pad Thai", UserID: "u1"})

	exists, err := markers.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, markers.SetMarker(ctx, key))
	exists, err = markers.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 24*time.Hour, mr.TTL(key))
	stored, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T17:30:00Z", stored)

	mr.FastForward(25 * time.Hour)
	exists, err = markers.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRatingMarkers_SetMarkerKeepsOpenWindow(t *testing.T) {
	markers, mr := newTestMarkers(t, 24*time.Hour)
	ctx := context.Background()
	key := "rated:R1:pho:u2"

	markers.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	require.NoError(t, markers.SetMarker(ctx, key))
	mr.FastForward(10 * time.Hour)

	markers.now = func() time.Time { return time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC) }
	require.NoError(t, markers.SetMarker(ctx, key))

	stored, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T12:00:00Z", stored)
	assert.Equal(t, 14*time.Hour, mr.TTL(key))
}

func TestRatingMarkers_Unavailable(t *testing.T) {
	markers, mr := newTestMarkers(t, time.Hour)
	mr.Close()

	_, err := markers.Exists(context.Background(), "rated:R1:pho:u1")
	assert.Error(t, err)
	assert.Error(t, markers.SetMarker(context.Background(), "rated:R1:pho:u1"))
}
