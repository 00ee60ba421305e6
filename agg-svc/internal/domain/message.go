package domain

import (
	"errors"
	"time"
)

var ErrIncompleteEvent = errors.New("rating event without restaurant or dish")

const EventDishRated = "dish_rated"

// RatingEvent mirrors what rate-svc publishes on the ratings topic.
type RatingEvent struct {
	Type          string    `json:"type"`
	RestaurantRef string    `json:"restaurant_ref"`
	DishName      string    `json:"dish_name"`
	UserID        string    `json:"user_id"`
	Rating        int       `json:"rating"`
	Timestamp     time.Time `json:"timestamp"`
}

const (
	SentimentPositive = "positive"
	SentimentMixed    = "mixed"
	SentimentNegative = "negative"
	SentimentAbsent   = "absent"
)

// FavoriteThreshold is the lowest rating that adds a dish to the diner's favorites.
const FavoriteThreshold = 4

type DishStats struct {
	RestaurantRef string
	DishName      string
	AverageRating float64
	RatingCount   int
	Sentiment     string
}

// SentimentFor folds an average star rating into the sentiment the
// recommendation scorer reads from menu_items.
func SentimentFor(average float64, count int) string {
	switch {
	case count == 0:
		return SentimentAbsent
	case average >= 4:
		return SentimentPositive
	case average >= 2.5:
		return SentimentMixed
	default:
		return SentimentNegative
	}
}
