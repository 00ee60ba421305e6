package service_test

import (
	"testing"

	"menurank/recommend-svc/internal/domain"
	"menurank/recommend-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func explain(item domain.MenuItemCandidate, venue domain.Venue, weights domain.ContextWeights, favorites []domain.FavoriteDish, predictions service.Predictions, menu ...domain.MenuItemCandidate) []string {
	sc := service.NewScoringContext(venue, weights, favorites, nil, predictions)
	ec := service.NewExplainContext(sc, append(menu, item))
	return service.ComposeReasons(service.ScoreItem(item, sc), ec)
}

func TestComposeReasons(t *testing.T) {
	tests := []struct {
		name        string
		item        domain.MenuItemCandidate
		venue       domain.Venue
		weights     domain.ContextWeights
		favorites   []domain.FavoriteDish
		predictions service.Predictions
		want        []string
	}{
		{
			name:    "craving without history",
			item:    domain.MenuItemCandidate{Name: "Szechuan Chili Chicken"},
			venue:   venueR1,
			weights: domain.ContextWeights{SelectedCravings: []string{"spicy"}, SpiceTolerance: 5},
			want: []string{
				"Popular choice at this restaurant",
				"Matches your craving for spicy",
				"A solid pick from this menu",
			},
		},
		{
			name:      "similar to a favorite at the same venue",
			item:      domain.MenuItemCandidate{Name: "Paneer Makhani", CustomerSentiment: domain.SentimentPositive, MentionFrequency: 4},
			venue:     venueR1,
			favorites: []domain.FavoriteDish{{DishName: "Butter Chicken", RestaurantRef: "R1"}},
			want: []string{
				"Similar to your favorite Butter Chicken here",
				"Something you haven't tried here yet",
				"Frequently praised in reviews",
			},
		},
		{
			name:      "favorite at this venue",
			item:      domain.MenuItemCandidate{Name: "butter chicken"},
			venue:     venueR1,
			favorites: []domain.FavoriteDish{{DishName: "Butter Chicken", RestaurantRef: "R1"}},
			want: []string{
				"One of your favorites here",
				"Matches your taste preferences",
				"A solid pick from this menu",
			},
		},
		{
			name:      "favorited elsewhere",
			item:      domain.MenuItemCandidate{Name: "Margherita Pizza"},
			venue:     venueR1,
			favorites: []domain.FavoriteDish{{DishName: "Margherita Pizza", RestaurantRef: "R2"}},
			want: []string{
				"You've favorited this dish before",
				"Matches your taste preferences",
				"A solid pick from this menu",
			},
		},
		{
			name:  "several similar favorites elsewhere",
			item:  domain.MenuItemCandidate{Name: "Goat Curry"},
			venue: venueR1,
			favorites: []domain.FavoriteDish{
				{DishName: "Chicken Tikka Masala", RestaurantRef: "R2"},
				{DishName: "Lamb Vindaloo", RestaurantRef: "R3"},
			},
			want: []string{
				"You've favorited multiple curries",
				"Matches your taste preferences",
				"A solid pick from this menu",
			},
		},
		{
			name:      "one similar favorite elsewhere",
			item:      domain.MenuItemCandidate{Name: "Beef Noodle Soup"},
			venue:     venueR1,
			favorites: []domain.FavoriteDish{{DishName: "Pad Thai", RestaurantRef: "R2"}},
			want: []string{
				"Similar to your favorite Pad Thai",
				"Matches your taste preferences",
				"A solid pick from this menu",
			},
		},
		{
			name:      "restaurant history without similarity",
			item:      domain.MenuItemCandidate{Name: "Caesar Salad"},
			venue:     venueR1,
			favorites: []domain.FavoriteDish{{DishName: "Tiramisu", RestaurantRef: "R1"}},
			want: []string{
				"You loved the Tiramisu here before",
				"Something you haven't tried here yet",
				"A solid pick from this menu",
			},
		},
		{
			name:        "strong prediction reasoning",
			item:        domain.MenuItemCandidate{Name: "Grilled Octopus", CustomerSentiment: domain.SentimentMixed},
			venue:       venueR1,
			weights:     domain.ContextWeights{PreferenceLevel: 1},
			favorites:   []domain.FavoriteDish{{DishName: "Tiramisu", RestaurantRef: "R2"}},
			predictions: service.Predictions{"grilled octopus": {Score: 80, Reasoning: "Charred seafood like your favorites"}},
			want: []string{
				"Popular choice at this restaurant",
				"Charred seafood like your favorites",
				"A solid pick from this menu",
			},
		},
		{
			name:    "adventurous diner",
			item:    domain.MenuItemCandidate{Name: "Duck Confit", CustomerSentiment: domain.SentimentPositive, MentionFrequency: 1},
			venue:   venueR1,
			weights: domain.ContextWeights{PreferenceLevel: 5},
			want: []string{
				"Highly praised by customers",
				"A crowd favorite worth branching out for",
				"A solid pick from this menu",
			},
		},
		{
			name:    "big appetite",
			item:    domain.MenuItemCandidate{Name: "Big Beef Burger"},
			venue:   venueR1,
			weights: domain.ContextWeights{HungerLevel: 5},
			want: []string{
				"Popular choice at this restaurant",
				"Hearty enough for a big appetite",
				"A solid pick from this menu",
			},
		},
		{
			name:    "small appetite",
			item:    domain.MenuItemCandidate{Name: "Garden Salad", CustomerSentiment: domain.SentimentPositive, MentionFrequency: 5},
			venue:   venueR1,
			weights: domain.ContextWeights{HungerLevel: 1},
			want: []string{
				"Highly praised by customers",
				"Matches your taste preferences",
				"Light enough for a small appetite",
			},
		},
		{
			name:    "several cravings",
			item:    domain.MenuItemCandidate{Name: "Crispy Chili Wings"},
			venue:   venueR1,
			weights: domain.ContextWeights{SelectedCravings: []string{"spicy", "crispy"}},
			want: []string{
				"Popular choice at this restaurant",
				"Matches your cravings for spicy and crispy",
				"A solid pick from this menu",
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := explain(testCase.item, testCase.venue, testCase.weights, testCase.favorites, testCase.predictions)

			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestComposeReasons_VenueFavoriteUsesMenuDescription(t *testing.T) {
	favorites := []domain.FavoriteDish{{DishName: "House Special", RestaurantRef: "R1"}}
	special := domain.MenuItemCandidate{Name: "House Special", Description: "Slow braised short rib"}
	item := domain.MenuItemCandidate{Name: "Braised Pork Belly"}

	got := explain(item, venueR1, domain.ContextWeights{}, favorites, nil, special)

	require.NotEmpty(t, got)
	assert.Equal(t, "Similar to your favorite House Special here", got[0])
}

func TestComposeReasons_NoDuplicateCategories(t *testing.T) {
	item := domain.MenuItemCandidate{Name: "Spicy Fried Chicken", CustomerSentiment: domain.SentimentPositive, MentionFrequency: 9}
	weights := domain.ContextWeights{SelectedCravings: []string{"spicy", "crispy"}, HungerLevel: 5, PreferenceLevel: 5}

	got := explain(item, venueR1, weights, nil, nil)

	assert.Len(t, got, 3)
	assert.Equal(t, "Highly praised by customers", got[0])
	assert.Equal(t, "Matches your cravings for spicy and crispy", got[1])
	assert.Equal(t, "A good pick for trying something new", got[2])
}

func TestExplainFactors(t *testing.T) {
	note := "Sam also loved this dish!"
	rec := domain.ScoredRecommendation{
		MenuItemCandidate:   domain.MenuItemCandidate{Name: "Szechuan Chili Chicken"},
		RecommendationScore: 96,
		ScoreBreakdown: domain.ScoreBreakdown{
			CustomerPraise:          25,
			TasteCompatibility:      40,
			CravingMatch:            -40,
			SpiceAdjustment:         15,
			FriendBoost:             10,
			RestaurantFavoriteBonus: 25,
			HungerMultiplier:        1.2,
		},
		FriendRecommendation: &note,
		TasteReasoning:       "Bold heat like your favorites",
	}

	got := service.ExplainFactors(rec)

	want := []domain.Factor{
		{Name: "Customer Reviews", Impact: 25, Detail: "Customers consistently praise this dish"},
		{Name: "Taste Match", Impact: 40, Detail: "Bold heat like your favorites"},
		{Name: "Friend Recommendation", Impact: 10, Detail: note},
		{Name: "Restaurant History", Impact: 25, Detail: "You've loved dishes from this restaurant before"},
		{Name: "Craving Match", Impact: -40, Detail: "Runs against what you're craving"},
		{Name: "Spice Level", Impact: 15, Detail: "Spicy, and you like heat"},
		{Name: "Hunger Fit", Impact: 16, Detail: "Portion suits how hungry you are"},
	}
	assert.Equal(t, want, got)
}

func TestExplainFactors_QuietItem(t *testing.T) {
	rec := domain.ScoredRecommendation{
		MenuItemCandidate:   domain.MenuItemCandidate{Name: "Bread Basket"},
		RecommendationScore: 17.5,
		ScoreBreakdown:      domain.ScoreBreakdown{CustomerPraise: 17.5, HungerMultiplier: 1},
	}

	assert.Empty(t, service.ExplainFactors(rec))
}
