package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound      = errors.New("menu item not found")
	ErrDuplicateItem = errors.New("menu already has a dish with this name")
)

const (
	CategoryMain    = "main"
	SentimentAbsent = "absent"
)

type MenuItem struct {
	ID                int       `json:"id"`
	RestaurantRef     string    `json:"restaurant_ref"`
	Name              string    `json:"name" validate:"required,max=200"`
	Description       string    `json:"description" validate:"max=2000"`
	Category          string    `json:"category" validate:"omitempty,oneof=starter main dessert beverage side"`
	CustomerSentiment string    `json:"customer_sentiment" validate:"omitempty,oneof=positive mixed negative absent"`
	MentionFrequency  int       `json:"mention_frequency" validate:"min=0"`
	CreatedAt         time.Time `json:"created_at"`
}

// Normalize trims free text and fills the defaults the recommender expects.
// It is safe to call more than once.
func (m *MenuItem) Normalize() {
	m.RestaurantRef = strings.TrimSpace(m.RestaurantRef)
	m.Name = strings.TrimSpace(m.Name)
	m.Description = strings.TrimSpace(m.Description)
	m.Category = strings.ToLower(strings.TrimSpace(m.Category))
	if m.Category == "" {
		m.Category = CategoryMain
	}
	m.CustomerSentiment = strings.ToLower(strings.TrimSpace(m.CustomerSentiment))
	if m.CustomerSentiment == "" {
		m.CustomerSentiment = SentimentAbsent
	}
}
