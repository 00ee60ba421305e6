package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"menurank/agg-svc/internal/domain"
	"menurank/logging"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

const defaultRetryDelay = time.Second

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	// RetryDelay is the pause after a failed read. Zero means one second.
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads rating events until ctx is canceled or the reader is closed.
// Bad messages are logged and skipped so one poison event cannot stall the
// partition; read failures are retried after RetryDelay.
func (c *Consumer) Start(ctx context.Context) {
	logging.Info().Msg("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logging.Info().Msg("Aggregation Service consumer stopped")
				return
			}
			if errors.Is(err, io.EOF) {
				logging.Info().Msg("Aggregation Service reader closed")
				return
			}
			logging.Error().Err(err).Dur("retry_in", c.retryDelay()).Msg("Error reading message")
			select {
			case <-ctx.Done():
				logging.Info().Msg("Aggregation Service consumer stopped")
				return
			case <-time.After(c.retryDelay()):
			}
			continue
		}

		var msg domain.RatingEvent
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			logging.Error().Err(err).Int64("offset", message.Offset).Msg("Error unmarshaling message")
			continue
		}

		if err := c.ProcessRating(ctx, msg); err != nil {
			logging.Error().Err(err).
				Str("restaurant_ref", msg.RestaurantRef).
				Str("dish", msg.DishName).
				Msg("Error processing rating")
		}
	}
}

func (c *Consumer) retryDelay() time.Duration {
	if c.RetryDelay <= 0 {
		return defaultRetryDelay
	}
	return c.RetryDelay
}

// ProcessRating folds one rating into the dish's menu_items row, drops the
// venue's cached menu snapshot and promotes well rated dishes to favorites.
func (c *Consumer) ProcessRating(ctx context.Context, msg domain.RatingEvent) error {
	if msg.Type != domain.EventDishRated {
		return nil
	}
	msg.RestaurantRef = strings.TrimSpace(msg.RestaurantRef)
	msg.DishName = strings.TrimSpace(msg.DishName)
	if msg.RestaurantRef == "" || msg.DishName == "" {
		return domain.ErrIncompleteEvent
	}

	stats, err := c.Store.RefreshDishStats(ctx, msg.RestaurantRef, msg.DishName)
	if err != nil {
		return fmt.Errorf("failed to refresh dish stats: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := c.Store.InvalidateMenu(gctx, msg.RestaurantRef); err != nil {
			return fmt.Errorf("failed to invalidate menu snapshot: %w", err)
		}
		return nil
	})
	if msg.Rating >= domain.FavoriteThreshold && msg.UserID != "" {
		g.Go(func() error {
			if err := c.Store.PromoteFavorite(gctx, msg.UserID, msg.DishName, msg.RestaurantRef); err != nil {
				return fmt.Errorf("failed to promote favorite: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logging.Ctx(ctx).Info().
		Str("restaurant_ref", stats.RestaurantRef).
		Str("dish", stats.DishName).
		Float64("avg_rating", stats.AverageRating).
		Int("rating_count", stats.RatingCount).
		Str("sentiment", stats.Sentiment).
		Msg("Successfully processed rating")
	return nil
}
