package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"menurank/logging"
	"menurank/recommend-svc/internal/domain"
	"menurank/recommend-svc/internal/metrics"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// MenuCacheKey is shared with the writers that invalidate snapshots.
func MenuCacheKey(ref string) string {
	return "menu:" + ref
}

type menuSnapshot struct {
	Items    []domain.MenuItemCandidate `json:"items"`
	CachedAt time.Time                  `json:"cached_at"`
}

// MenuCache stores menu snapshots with an explicit TTL. Freshness is judged by
// the injected clock against the snapshot's own timestamp; the redis expiry
// only reclaims memory.
type MenuCache struct {
	Client *redis.Client
	TTL    time.Duration
	Now    func() time.Time
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{Client: client, TTL: ttl, Now: time.Now}
}

func (c *MenuCache) Get(ctx context.Context, ref string) ([]domain.MenuItemCandidate, bool, error) {
	raw, err := c.Client.Get(ctx, MenuCacheKey(ref)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var snap menuSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, false, nil
	}
	if c.Now().Sub(snap.CachedAt) > c.TTL {
		return nil, false, nil
	}
	return snap.Items, true, nil
}

func (c *MenuCache) Set(ctx context.Context, ref string, items []domain.MenuItemCandidate) error {
	payload, err := json.Marshal(menuSnapshot{Items: items, CachedAt: c.Now()})
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, MenuCacheKey(ref), payload, c.TTL).Err()
}

func (c *MenuCache) Invalidate(ctx context.Context, ref string) error {
	return c.Client.Del(ctx, MenuCacheKey(ref)).Err()
}

type MenuLoader interface {
	ListMenuItems(ctx context.Context, venue domain.Venue) ([]domain.MenuItemCandidate, error)
}

// CachedMenuSource reads through the snapshot cache to the loader. Cache
// errors are logged and bypassed.
type CachedMenuSource struct {
	Loader MenuLoader
	Cache  *MenuCache
}

func NewCachedMenuSource(loader MenuLoader, cache *MenuCache) *CachedMenuSource {
	return &CachedMenuSource{Loader: loader, Cache: cache}
}

func (s *CachedMenuSource) ListMenuItems(ctx context.Context, venue domain.Venue) ([]domain.MenuItemCandidate, error) {
	ref := venue.Ref()
	items, ok, err := s.Cache.Get(ctx, ref)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("venue", ref).Msg("menu cache read failed")
	}
	if ok {
		metrics.MenuCacheLookups.WithLabelValues("hit").Inc()
		return items, nil
	}
	metrics.MenuCacheLookups.WithLabelValues("miss").Inc()

	items, err = s.Loader.ListMenuItems(ctx, venue)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := s.Cache.Set(ctx, ref, items); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("venue", ref).Msg("menu cache write failed")
		}
	}
	return items, nil
}

func sessionKey(id string) string {
	return "session:" + id
}

type SessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{Client: client, TTL: ttl}
}

func (s *SessionStore) Save(ctx context.Context, session *domain.DiningSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, sessionKey(session.ID), payload, s.TTL).Err()
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.DiningSession, error) {
	raw, err := s.Client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var session domain.DiningSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &session, nil
}

// AddSelection appends under WATCH so concurrent co-diners don't drop each other's picks.
func (s *SessionStore) AddSelection(ctx context.Context, id string, sel domain.FriendSelection) (*domain.DiningSession, error) {
	key := sessionKey(id)
	var updated *domain.DiningSession

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		var session domain.DiningSession
		if err := json.Unmarshal(raw, &session); err != nil {
			return fmt.Errorf("failed to decode session %s: %w", id, err)
		}
		session.Selections = append(session.Selections, sel)

		payload, err := json.Marshal(session)
		if err != nil {
			return err
		}
		ttl := tx.TTL(ctx, key).Val()
		if ttl <= 0 {
			ttl = s.TTL
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, ttl)
			return nil
		})
		if err == nil {
			updated = &session
		}
		return err
	}

	for attempt := 0; attempt < 3; attempt++ {
		err := s.Client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, fmt.Errorf("failed to add selection to session %s: too much contention", id)
}
