package domain

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryStarter  Category = "starter"
	CategoryMain     Category = "main"
	CategoryDessert  Category = "dessert"
	CategoryBeverage Category = "beverage"
	CategorySide     Category = "side"
)

// ParseCategory maps free text onto the closed set, defaulting to main.
func ParseCategory(s string) Category {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryStarter, CategoryMain, CategoryDessert, CategoryBeverage, CategorySide:
		return c
	default:
		return CategoryMain
	}
}

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentMixed    Sentiment = "mixed"
	SentimentNegative Sentiment = "negative"
	SentimentAbsent   Sentiment = "absent"
)

func ParseSentiment(s string) Sentiment {
	switch v := Sentiment(strings.ToLower(strings.TrimSpace(s))); v {
	case SentimentPositive, SentimentMixed, SentimentNegative:
		return v
	default:
		return SentimentAbsent
	}
}

type MenuItemCandidate struct {
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Category          Category  `json:"category"`
	CustomerSentiment Sentiment `json:"customer_sentiment"`
	MentionFrequency  int       `json:"mention_frequency"`
}

// Text is the lowercased name and description every keyword heuristic runs against.
func (m MenuItemCandidate) Text() string {
	return strings.ToLower(m.Name + " " + m.Description)
}

type FavoriteDish struct {
	ID            int       `json:"id,omitempty"`
	UserID        string    `json:"user_id,omitempty"`
	DishName      string    `json:"dish_name" validate:"required"`
	RestaurantRef string    `json:"restaurant_ref"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

type Venue struct {
	PlaceID string `json:"place_id"`
	Name    string `json:"name"`
}

// Ref is the key menus are stored under.
func (v Venue) Ref() string {
	if v.PlaceID != "" {
		return v.PlaceID
	}
	return v.Name
}

const (
	DefaultLevel = 3
	MinLevel     = 1
	MaxLevel     = 5
)

type ContextWeights struct {
	HungerLevel      int      `json:"hunger_level"`
	PreferenceLevel  int      `json:"preference_level"`
	SelectedCravings []string `json:"selected_cravings"`
	SpiceTolerance   int      `json:"spice_tolerance"`
}

// Normalize fills unset sliders with the default and clamps the rest to 1..5.
func (c ContextWeights) Normalize() ContextWeights {
	c.HungerLevel = level(c.HungerLevel)
	c.PreferenceLevel = level(c.PreferenceLevel)
	c.SpiceTolerance = level(c.SpiceTolerance)
	return c
}

func level(v int) int {
	switch {
	case v == 0:
		return DefaultLevel
	case v < MinLevel:
		return MinLevel
	case v > MaxLevel:
		return MaxLevel
	default:
		return v
	}
}

// Cravings returns the recognised craving tags, deduplicated, in request order.
func (c ContextWeights) Cravings() []Craving {
	seen := make(map[Craving]bool, len(c.SelectedCravings))
	out := make([]Craving, 0, len(c.SelectedCravings))
	for _, raw := range c.SelectedCravings {
		tag, ok := ParseCraving(raw)
		if !ok || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

type FriendSelection struct {
	DishName   string `json:"dish_name" validate:"required"`
	FriendName string `json:"friend_name,omitempty"`
	UserID     string `json:"user_id,omitempty"`
}

type TasteProfile struct {
	SpicePreference string   `json:"spice_preference"`
	CookingMethods  []string `json:"cooking_methods"`
	Textures        []string `json:"textures"`
	FlavorProfiles  []string `json:"flavor_profiles"`
	Cuisines        []string `json:"cuisines"`
	KeyIngredients  []string `json:"key_ingredients"`
	DishCategories  []string `json:"dish_categories"`
	OverallPattern  string   `json:"overall_pattern"`
}

func (p TasteProfile) IsEmpty() bool {
	return p.SpicePreference == "" && p.OverallPattern == "" &&
		len(p.CookingMethods) == 0 && len(p.Textures) == 0 && len(p.FlavorProfiles) == 0 &&
		len(p.Cuisines) == 0 && len(p.KeyIngredients) == 0 && len(p.DishCategories) == 0
}

type Prediction struct {
	Score      float64 `json:"prediction_score"`
	Reasoning  string  `json:"reasoning"`
	Confidence string  `json:"confidence"`
}

type ScoreBreakdown struct {
	CustomerPraise          float64 `json:"customer_praise"`
	TasteCompatibility      float64 `json:"taste_compatibility"`
	CravingMatch            float64 `json:"craving_match"`
	SpiceAdjustment         float64 `json:"spice_adjustment"`
	FriendBoost             float64 `json:"friend_boost"`
	RestaurantFavoriteBonus float64 `json:"restaurant_favorite_bonus"`
	HungerMultiplier        float64 `json:"hunger_multiplier"`
}

type ScoredRecommendation struct {
	MenuItemCandidate
	RecommendationScore  float64        `json:"recommendation_score"`
	ScoreBreakdown       ScoreBreakdown `json:"score_breakdown"`
	RecommendationReason string         `json:"recommendation_reason"`
	FriendRecommendation *string        `json:"friend_recommendation"`
	TasteReasoning       string         `json:"taste_reasoning"`
}

type VenueMatch string

const (
	VenueMatchNone        VenueMatch = "none"
	VenueMatchExact       VenueMatch = "exact"
	VenueMatchApproximate VenueMatch = "approximate"
)

type Request struct {
	Venue            Venue             `json:"venue"`
	UserID           string            `json:"user_id,omitempty"`
	SessionID        string            `json:"session_id,omitempty"`
	Favorites        []FavoriteDish    `json:"favorites"`
	Restrictions     []string          `json:"dietary_restrictions"`
	Context          ContextWeights    `json:"context"`
	FriendSelections []FriendSelection `json:"friend_selections"`
}

type Response struct {
	Venue           Venue                  `json:"venue"`
	Recommendations []ScoredRecommendation `json:"recommendations"`
	TotalCandidates int                    `json:"total_candidates"`
	FilteredCount   int                    `json:"filtered_count"`
	TasteProfile    TasteProfile           `json:"taste_profile"`
	VenueMatch      VenueMatch             `json:"venue_match"`
	Message         string                 `json:"message,omitempty"`
}

type Factor struct {
	Name   string  `json:"factor"`
	Impact float64 `json:"impact"`
	Detail string  `json:"description"`
}

type DiningSession struct {
	ID         string            `json:"id"`
	Venue      Venue             `json:"venue"`
	HostName   string            `json:"host_name,omitempty"`
	Selections []FriendSelection `json:"selections"`
	CreatedAt  time.Time         `json:"created_at"`
}

// FriendsOf returns the session's selections made by anyone but userID.
func (s DiningSession) FriendsOf(userID string) []FriendSelection {
	out := make([]FriendSelection, 0, len(s.Selections))
	for _, sel := range s.Selections {
		if userID != "" && sel.UserID == userID {
			continue
		}
		out = append(out, sel)
	}
	return out
}
