package service

import (
	"fmt"
	"sort"
	"strings"

	"menurank/recommend-svc/internal/domain"
)

const (
	ReasonSeparator = " | "
	maxReasons      = 3

	// compatibility and praise above this are worth calling out
	notableComponent = 20.0

	FallbackTasteReasoning = "Based on restaurant popularity"
)

type reasonCategory int

const (
	reasonHistory reasonCategory = iota
	reasonPraise
	reasonCompatibility
	reasonCraving
	reasonHunger
	reasonAdventure
	reasonTaste
	reasonGeneric
)

type reason struct {
	text     string
	category reasonCategory
}

// ExplainContext extends the scoring context with menu descriptions keyed by
// normalised dish name, used to enrich same-venue favorites.
type ExplainContext struct {
	ScoringContext
	MenuDescriptions map[string]string
}

func NewExplainContext(sc ScoringContext, menu []domain.MenuItemCandidate) ExplainContext {
	desc := make(map[string]string, len(menu))
	for _, item := range menu {
		desc[normalizeName(item.Name)] = item.Description
	}
	return ExplainContext{ScoringContext: sc, MenuDescriptions: desc}
}

func (ec ExplainContext) adventurous() bool {
	return ec.Weights.PreferenceLevel >= 4
}

// ComposeReasons picks up to three reasons in priority order, never two from
// the same category.
func ComposeReasons(s ItemScore, ec ExplainContext) []string {
	used := make(map[reasonCategory]bool, maxReasons)
	reasons := make([]string, 0, maxReasons)
	add := func(r reason) {
		if r.text == "" || used[r.category] || len(reasons) == maxReasons {
			return
		}
		used[r.category] = true
		reasons = append(reasons, r.text)
	}

	first, similar := identityReason(s, ec)
	add(first)
	add(compatibilityReason(s, ec, similar, used))
	add(reinforcementReason(s, ec, used))
	return reasons
}

func identityReason(s ItemScore, ec ExplainContext) (reason, bool) {
	if isFavorite(s.Item.Name, ec.VenueFavorites) {
		return reason{"One of your favorites here", reasonHistory}, true
	}
	if isFavorite(s.Item.Name, ec.Favorites) {
		return reason{"You've favorited this dish before", reasonHistory}, true
	}

	text := s.Item.Text()
	for _, fav := range ec.VenueFavorites {
		if CompareDishes(ec.favoriteText(fav, true), text).Similar() {
			return reason{fmt.Sprintf("Similar to your favorite %s here", fav.DishName), reasonHistory}, true
		}
	}

	var similar []domain.FavoriteDish
	shared := make(map[string]int)
	for _, fav := range ec.Favorites {
		if isFavorite(fav.DishName, ec.VenueFavorites) {
			continue
		}
		sim := CompareDishes(ec.favoriteText(fav, false), text)
		if !sim.Similar() {
			continue
		}
		similar = append(similar, fav)
		for _, token := range sim.Indicators {
			shared[token]++
		}
	}
	if token, count := topIndicator(shared); count >= 2 {
		return reason{fmt.Sprintf("You've favorited multiple %s", domain.SimilarityIndicators[token]), reasonHistory}, true
	}
	if len(similar) > 0 {
		return reason{fmt.Sprintf("Similar to your favorite %s", similar[0].DishName), reasonHistory}, true
	}

	if s.Breakdown.RestaurantFavoriteBonus > 0 {
		for _, fav := range ec.VenueFavorites {
			if strings.TrimSpace(fav.DishName) != "" {
				return reason{fmt.Sprintf("You loved the %s here before", fav.DishName), reasonHistory}, false
			}
		}
		return reason{"You've loved dishes from this restaurant before", reasonHistory}, false
	}

	if s.Item.CustomerSentiment == domain.SentimentPositive {
		return reason{"Highly praised by customers", reasonPraise}, false
	}
	return reason{"Popular choice at this restaurant", reasonPraise}, false
}

func compatibilityReason(s ItemScore, ec ExplainContext, similar bool, used map[reasonCategory]bool) reason {
	if !similar && s.Breakdown.TasteCompatibility > notableComponent && s.Prediction != nil && s.Prediction.Reasoning != "" {
		return reason{s.Prediction.Reasoning, reasonCompatibility}
	}
	if r := cravingReason(s); r.text != "" && !used[r.category] {
		return r
	}
	if s.HungerFit == HungerFitHeavy && !used[reasonHunger] {
		return hungerReason(s)
	}
	if ec.adventurous() && !used[reasonAdventure] {
		return reason{"A crowd favorite worth branching out for", reasonAdventure}
	}
	if len(ec.VenueFavorites) > 0 && !isFavorite(s.Item.Name, ec.VenueFavorites) {
		return reason{"Something you haven't tried here yet", reasonTaste}
	}
	return reason{"Matches your taste preferences", reasonTaste}
}

func reinforcementReason(s ItemScore, ec ExplainContext, used map[reasonCategory]bool) reason {
	if r := cravingReason(s); r.text != "" && !used[r.category] {
		return r
	}
	if s.HungerFit != HungerFitNone && !used[reasonHunger] {
		return hungerReason(s)
	}
	if ec.adventurous() && !used[reasonAdventure] {
		return reason{"A good pick for trying something new", reasonAdventure}
	}
	if s.Item.CustomerSentiment == domain.SentimentPositive && !used[reasonPraise] {
		if s.Item.MentionFrequency > frequentMentions {
			return reason{"Frequently praised in reviews", reasonPraise}
		}
		return reason{"Highly praised by customers", reasonPraise}
	}
	return reason{"A solid pick from this menu", reasonGeneric}
}

func cravingReason(s ItemScore) reason {
	if len(s.MatchedCravings) == 0 {
		return reason{}
	}
	tags := make([]string, len(s.MatchedCravings))
	for i, c := range s.MatchedCravings {
		tags[i] = string(c)
	}
	if len(tags) == 1 {
		return reason{"Matches your craving for " + tags[0], reasonCraving}
	}
	list := strings.Join(tags[:len(tags)-1], ", ") + " and " + tags[len(tags)-1]
	return reason{"Matches your cravings for " + list, reasonCraving}
}

func hungerReason(s ItemScore) reason {
	if s.HungerFit == HungerFitLight {
		return reason{"Light enough for a small appetite", reasonHunger}
	}
	return reason{"Hearty enough for a big appetite", reasonHunger}
}

func (ec ExplainContext) favoriteText(fav domain.FavoriteDish, sameVenue bool) string {
	if !sameVenue {
		return fav.DishName
	}
	return fav.DishName + " " + ec.MenuDescriptions[normalizeName(fav.DishName)]
}

func isFavorite(name string, favorites []domain.FavoriteDish) bool {
	key := normalizeName(name)
	for _, fav := range favorites {
		if normalizeName(fav.DishName) == key {
			return true
		}
	}
	return false
}

func topIndicator(counts map[string]int) (string, int) {
	tokens := make([]string, 0, len(counts))
	for token := range counts {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	best, bestCount := "", 0
	for _, token := range tokens {
		if counts[token] > bestCount {
			best, bestCount = token, counts[token]
		}
	}
	return best, bestCount
}

// ExplainFactors lists the named signals behind one recommendation.
func ExplainFactors(rec domain.ScoredRecommendation) []domain.Factor {
	b := rec.ScoreBreakdown
	var factors []domain.Factor

	if b.CustomerPraise > notableComponent {
		factors = append(factors, domain.Factor{
			Name:   "Customer Reviews",
			Impact: roundTo(b.CustomerPraise, 1),
			Detail: "Customers consistently praise this dish",
		})
	}
	if b.TasteCompatibility > notableComponent {
		detail := rec.TasteReasoning
		if detail == "" {
			detail = "Matches your taste profile"
		}
		factors = append(factors, domain.Factor{Name: "Taste Match", Impact: roundTo(b.TasteCompatibility, 1), Detail: detail})
	}
	if b.FriendBoost > 0 {
		detail := friendFallbackNote
		if rec.FriendRecommendation != nil {
			detail = *rec.FriendRecommendation
		}
		factors = append(factors, domain.Factor{Name: "Friend Recommendation", Impact: b.FriendBoost, Detail: detail})
	}
	if b.RestaurantFavoriteBonus > 0 {
		factors = append(factors, domain.Factor{
			Name:   "Restaurant History",
			Impact: b.RestaurantFavoriteBonus,
			Detail: "You've loved dishes from this restaurant before",
		})
	}
	if b.CravingMatch != 0 {
		detail := "Matches what you're craving"
		if b.CravingMatch < 0 {
			detail = "Runs against what you're craving"
		}
		factors = append(factors, domain.Factor{Name: "Craving Match", Impact: roundTo(b.CravingMatch, 1), Detail: detail})
	}
	if b.SpiceAdjustment != 0 {
		detail := "Spicy, and you like heat"
		if b.SpiceAdjustment < 0 {
			detail = "Spicy, above your tolerance"
		}
		factors = append(factors, domain.Factor{Name: "Spice Level", Impact: b.SpiceAdjustment, Detail: detail})
	}
	if b.HungerMultiplier > 1 {
		boost := rec.RecommendationScore - rec.RecommendationScore/b.HungerMultiplier
		factors = append(factors, domain.Factor{Name: "Hunger Fit", Impact: roundTo(boost, 1), Detail: "Portion suits how hungry you are"})
	}
	return factors
}
