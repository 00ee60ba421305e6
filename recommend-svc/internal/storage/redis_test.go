package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"menurank/recommend-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

type fakeLoader struct {
	items []domain.MenuItemCandidate
	err   error
	calls int
}

func (f *fakeLoader) ListMenuItems(ctx context.Context, venue domain.Venue) ([]domain.MenuItemCandidate, error) {
	f.calls++
	return f.items, f.err
}

var testMenu = []domain.MenuItemCandidate{
	{Name: "Pad Thai", Category: domain.CategoryMain, CustomerSentiment: domain.SentimentPositive, MentionFrequency: 3},
}

func TestMenuCache_TTLUsesInjectedClock(t *testing.T) {
	_, client := setupTestRedis(t)
	now := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	cache := NewMenuCache(client, time.Hour)
	cache.Now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "R1", testMenu))

	got, ok, err := cache.Get(ctx, "R1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, testMenu, got)

	now = now.Add(time.Hour + time.Second)
	_, ok, err = cache.Get(ctx, "R1")
	require.NoError(t, err)
	assert.False(t, ok, "snapshot older than the ttl is stale")
}

func TestMenuCache_MissAndInvalidate(t *testing.T) {
	mr, client := setupTestRedis(t)
	cache := NewMenuCache(client, time.Hour)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "R1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "R1", testMenu))
	assert.True(t, mr.Exists("menu:R1"))
	require.NoError(t, cache.Invalidate(ctx, "R1"))
	assert.False(t, mr.Exists("menu:R1"))

	require.NoError(t, mr.Set("menu:R2", "{not json"))
	_, ok, err = cache.Get(ctx, "R2")
	require.NoError(t, err)
	assert.False(t, ok, "corrupt snapshots read as a miss")
}

func TestCachedMenuSource(t *testing.T) {
	_, client := setupTestRedis(t)
	loader := &fakeLoader{items: testMenu}
	source := NewCachedMenuSource(loader, NewMenuCache(client, time.Hour))
	venue := domain.Venue{PlaceID: "R1"}
	ctx := context.Background()

	first, err := source.ListMenuItems(ctx, venue)
	require.NoError(t, err)
	second, err := source.ListMenuItems(ctx, venue)
	require.NoError(t, err)

	assert.Equal(t, testMenu, first)
	assert.Equal(t, testMenu, second)
	assert.Equal(t, 1, loader.calls)
}

func TestCachedMenuSource_EmptyMenusAreNotCached(t *testing.T) {
	mr, client := setupTestRedis(t)
	loader := &fakeLoader{}
	source := NewCachedMenuSource(loader, NewMenuCache(client, time.Hour))

	_, err := source.ListMenuItems(context.Background(), domain.Venue{Name: "New Place"})
	require.NoError(t, err)

	assert.False(t, mr.Exists("menu:New Place"))
}

func TestCachedMenuSource_LoaderError(t *testing.T) {
	_, client := setupTestRedis(t)
	loaderErr := errors.New("db down")
	source := NewCachedMenuSource(&fakeLoader{err: loaderErr}, NewMenuCache(client, time.Hour))

	_, err := source.ListMenuItems(context.Background(), domain.Venue{PlaceID: "R1"})

	assert.ErrorIs(t, err, loaderErr)
}

func TestCachedMenuSource_RedisDownFallsThrough(t *testing.T) {
	mr, client := setupTestRedis(t)
	mr.Close()
	loader := &fakeLoader{items: testMenu}
	source := NewCachedMenuSource(loader, NewMenuCache(client, time.Hour))

	got, err := source.ListMenuItems(context.Background(), domain.Venue{PlaceID: "R1"})

	require.NoError(t, err)
	assert.Equal(t, testMenu, got)
}

func TestSessionStore(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewSessionStore(client, 6*time.Hour)
	ctx := context.Background()
	session := &domain.DiningSession{
		ID:         "s1",
		Venue:      domain.Venue{PlaceID: "R1"},
		HostName:   "Ana",
		Selections: []domain.FriendSelection{},
		CreatedAt:  time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.Save(ctx, session))
	assert.Equal(t, 6*time.Hour, mr.TTL("session:s1"))

	mr.FastForward(time.Hour)
	updated, err := store.AddSelection(ctx, "s1", domain.FriendSelection{DishName: "Pho", FriendName: "Sam", UserID: "u2"})
	require.NoError(t, err)
	assert.Len(t, updated.Selections, 1)
	assert.Equal(t, 5*time.Hour, mr.TTL("session:s1"), "adding a pick keeps the original expiry")

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.HostName)
	assert.Equal(t, []domain.FriendSelection{{DishName: "Pho", FriendName: "Sam", UserID: "u2"}}, got.Selections)
}

func TestSessionStore_NotFound(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewSessionStore(client, time.Hour)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.AddSelection(context.Background(), "missing", domain.FriendSelection{DishName: "Pho"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
