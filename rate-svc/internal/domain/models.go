package domain

import (
	"errors"
	"time"
)

var (
	ErrDishNotOnMenu   = errors.New("dish is not on this restaurant's menu")
	ErrDuplicateRating = errors.New("dish was already rated recently")
)

type Rating struct {
	ID            int       `json:"id"`
	RestaurantRef string    `json:"restaurant_ref" validate:"required"`
	DishName      string    `json:"dish_name" validate:"required"`
	UserID        string    `json:"user_id" validate:"required"`
	Rating        int       `json:"rating" validate:"min=1,max=5"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

const EventDishRated = "dish_rated"

// RatingEvent is the message published for every stored rating.
type RatingEvent struct {
	Type          string    `json:"type"`
	RestaurantRef string    `json:"restaurant_ref"`
	DishName      string    `json:"dish_name"`
	UserID        string    `json:"user_id"`
	Rating        int       `json:"rating"`
	Timestamp     time.Time `json:"timestamp"`
}
