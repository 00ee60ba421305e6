package domain_test

import (
	"testing"

	"menurank/recommend-svc/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestContextWeights_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		input domain.ContextWeights
		want  domain.ContextWeights
	}{
		{
			name:  "defaults",
			input: domain.ContextWeights{},
			want:  domain.ContextWeights{HungerLevel: 3, PreferenceLevel: 3, SpiceTolerance: 3},
		},
		{
			name:  "clamps",
			input: domain.ContextWeights{HungerLevel: 9, PreferenceLevel: -2, SpiceTolerance: 5},
			want:  domain.ContextWeights{HungerLevel: 5, PreferenceLevel: 1, SpiceTolerance: 5},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, testCase.input.Normalize())
		})
	}
}

func TestContextWeights_Cravings(t *testing.T) {
	weights := domain.ContextWeights{SelectedCravings: []string{"Spicy", "umami", "carb_heavy", "spicy", " crispy "}}

	assert.Equal(t, []domain.Craving{domain.CravingSpicy, domain.CravingCarbHeavy, domain.CravingCrispy}, weights.Cravings())
}

func TestParseCategoryAndSentiment(t *testing.T) {
	assert.Equal(t, domain.CategoryStarter, domain.ParseCategory(" Starter"))
	assert.Equal(t, domain.CategoryMain, domain.ParseCategory("entree"))
	assert.Equal(t, domain.CategoryMain, domain.ParseCategory(""))
	assert.Equal(t, domain.SentimentMixed, domain.ParseSentiment("MIXED"))
	assert.Equal(t, domain.SentimentAbsent, domain.ParseSentiment("unknown"))
}

func TestParseRestriction(t *testing.T) {
	for _, raw := range []string{"gluten-free", "Gluten Free", "gluten_free"} {
		r, ok := domain.ParseRestriction(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, domain.RestrictionGlutenFree, r)
	}
	_, ok := domain.ParseRestriction("keto")
	assert.False(t, ok)
}

func TestVocabulary_VeganExtendsVegetarian(t *testing.T) {
	vegan := domain.DietaryBlocklists[domain.RestrictionVegan]
	for _, kw := range domain.DietaryBlocklists[domain.RestrictionVegetarian] {
		assert.Contains(t, vegan, kw)
	}
	for _, kw := range []string{"cheese", "cream", "butter", "egg", "milk", "yogurt"} {
		assert.Contains(t, vegan, kw)
	}
}

func TestVocabulary_EveryCravingHasBothTables(t *testing.T) {
	for craving := range domain.CravingKeywords {
		assert.NotEmpty(t, domain.AntiCravingKeywords[craving], craving)
	}
	assert.Len(t, domain.CravingKeywords, 8)
}

func TestVocabulary_ImpliedIndicatorsAreKnown(t *testing.T) {
	for alias, tokens := range domain.ImpliedIndicators {
		for _, token := range tokens {
			_, ok := domain.SimilarityIndicators[token]
			assert.True(t, ok, "%s implies unknown indicator %s", alias, token)
		}
	}
}

func TestDiningSession_FriendsOf(t *testing.T) {
	session := domain.DiningSession{Selections: []domain.FriendSelection{
		{DishName: "Ramen", UserID: "u1"},
		{DishName: "Gyoza", UserID: "u2"},
		{DishName: "Mochi"},
	}}

	friends := session.FriendsOf("u1")
	assert.Len(t, friends, 2)
	assert.Equal(t, "Gyoza", friends[0].DishName)
	assert.Len(t, session.FriendsOf(""), 3)
}

func TestVenue_Ref(t *testing.T) {
	assert.Equal(t, "ChIJ123", domain.Venue{PlaceID: "ChIJ123", Name: "Bombay Palace"}.Ref())
	assert.Equal(t, "Bombay Palace", domain.Venue{Name: "Bombay Palace"}.Ref())
}
