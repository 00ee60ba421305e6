package service

import (
	"math"
	"strings"

	"menurank/recommend-svc/internal/domain"
)

const (
	positivePraise   = 40.0
	mixedPraise      = 20.0
	floorPraise      = 15.0
	floorCategoryPad = 5.0
	floorDescPad     = 5.0
	floorDescLength  = 20
	frequentPraise   = 10.0
	frequentMentions = 2

	compatibilityScale  = 50.0
	cravingBonusScale   = 50.0
	cravingPenaltyScale = 40.0

	spiceAvoidPenalty = -10.0
	spiceSeekBonus    = 15.0

	friendBoost             = 10.0
	restaurantFavoriteBonus = 25.0

	hungerBoost = 1.2
)

const friendFallbackNote = "Your friend also loved this dish!"

type HungerFit string

const (
	HungerFitNone  HungerFit = ""
	HungerFitLight HungerFit = "light"
	HungerFitHeavy HungerFit = "heavy"
)

// ScoringContext is the per-request state every item is scored against.
type ScoringContext struct {
	Venue          domain.Venue
	Weights        domain.ContextWeights
	Cravings       []domain.Craving
	Favorites      []domain.FavoriteDish
	VenueFavorites []domain.FavoriteDish
	VenueMatch     domain.VenueMatch
	Friends        []domain.FriendSelection
	Predictions    Predictions
}

func NewScoringContext(venue domain.Venue, weights domain.ContextWeights, favorites []domain.FavoriteDish, friends []domain.FriendSelection, predictions Predictions) ScoringContext {
	weights = weights.Normalize()
	venueFavs, match := MatchVenueFavorites(venue, favorites)
	if predictions == nil {
		predictions = Predictions{}
	}
	return ScoringContext{
		Venue:          venue,
		Weights:        weights,
		Cravings:       weights.Cravings(),
		Favorites:      favorites,
		VenueFavorites: venueFavs,
		VenueMatch:     match,
		Friends:        friends,
		Predictions:    predictions,
	}
}

// PraiseWeight is 0 at preference 1 (all personal taste) and 1 at preference 5 (all crowd).
func (sc ScoringContext) PraiseWeight() float64 {
	return float64(sc.Weights.PreferenceLevel-domain.MinLevel) / float64(domain.MaxLevel-domain.MinLevel)
}

func (sc ScoringContext) PersonalWeight() float64 {
	return 1 - sc.PraiseWeight()
}

// ItemScore is a scored item plus the signals the explanation step reads.
type ItemScore struct {
	Item            domain.MenuItemCandidate
	Breakdown       domain.ScoreBreakdown
	Total           float64
	MatchedCravings []domain.Craving
	Prediction      *domain.Prediction
	FriendNote      *string
	HungerFit       HungerFit
	Spicy           bool
}

// ScoreItem computes every contribution for one item. It reads nothing but
// the item and the shared context.
func ScoreItem(item domain.MenuItemCandidate, sc ScoringContext) ItemScore {
	text := item.Text()
	score := ItemScore{Item: item}

	score.Breakdown.CustomerPraise = customerPraise(item, sc.PraiseWeight())

	if pred, ok := sc.Predictions.Lookup(item.Name); ok {
		p := pred
		score.Prediction = &p
		score.Breakdown.TasteCompatibility = pred.Score / 100 * compatibilityScale * sc.PersonalWeight()
	}

	var penalized int
	score.MatchedCravings, penalized = matchCravings(text, sc.Cravings)
	if total := len(sc.Cravings); total > 0 {
		bonus := float64(len(score.MatchedCravings)) / float64(total) * cravingBonusScale
		penalty := float64(penalized) / float64(total) * cravingPenaltyScale
		score.Breakdown.CravingMatch = bonus - penalty
	}

	score.Spicy = domain.ContainsAny(text, domain.SpicyKeywords)
	if score.Spicy {
		switch {
		case sc.Weights.SpiceTolerance <= 2:
			score.Breakdown.SpiceAdjustment = spiceAvoidPenalty
		case sc.Weights.SpiceTolerance >= 4:
			score.Breakdown.SpiceAdjustment = spiceSeekBonus
		}
	}

	if note, ok := friendNote(item.Name, sc.Friends); ok {
		score.FriendNote = &note
		score.Breakdown.FriendBoost = friendBoost
	}

	if len(sc.VenueFavorites) > 0 {
		score.Breakdown.RestaurantFavoriteBonus = restaurantFavoriteBonus
	}

	score.HungerFit = hungerFit(text, sc.Weights.HungerLevel)
	score.Breakdown.HungerMultiplier = 1.0
	if score.HungerFit != HungerFitNone {
		score.Breakdown.HungerMultiplier = hungerBoost
	}

	b := score.Breakdown
	sum := b.CustomerPraise + b.TasteCompatibility + b.CravingMatch + b.FriendBoost + b.SpiceAdjustment + b.RestaurantFavoriteBonus
	score.Total = roundTo(sum*b.HungerMultiplier, 1)
	return score
}

func customerPraise(item domain.MenuItemCandidate, praiseWeight float64) float64 {
	var praise float64
	switch item.CustomerSentiment {
	case domain.SentimentPositive:
		praise = positivePraise * praiseWeight
	case domain.SentimentMixed:
		praise = mixedPraise * praiseWeight
	default:
		// floor keeps unreviewed items from scoring zero
		praise = floorPraise * praiseWeight
		if item.Category == domain.CategoryMain || item.Category == domain.CategoryStarter {
			praise += floorCategoryPad * praiseWeight
		}
		if len(item.Description) > floorDescLength {
			praise += floorDescPad * praiseWeight
		}
	}
	if item.MentionFrequency > frequentMentions {
		praise += frequentPraise * praiseWeight
	}
	return praise
}

// matchCravings returns the cravings the text satisfies and how many of the
// rest it contradicts. A craving lands in at most one of the two.
func matchCravings(text string, cravings []domain.Craving) ([]domain.Craving, int) {
	var matched []domain.Craving
	penalized := 0
	for _, c := range cravings {
		if domain.ContainsAny(text, domain.CravingKeywords[c]) {
			matched = append(matched, c)
			continue
		}
		if domain.ContainsAny(text, domain.AntiCravingKeywords[c]) {
			penalized++
		}
	}
	return matched, penalized
}

func friendNote(itemName string, friends []domain.FriendSelection) (string, bool) {
	var names []string
	found := false
	for _, f := range friends {
		if !strings.EqualFold(strings.TrimSpace(f.DishName), strings.TrimSpace(itemName)) {
			continue
		}
		found = true
		if n := strings.TrimSpace(f.FriendName); n != "" {
			names = append(names, n)
		}
	}
	if !found {
		return "", false
	}
	switch len(names) {
	case 0:
		return friendFallbackNote, true
	case 1:
		return names[0] + " also loved this dish!", true
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1] + " also loved this dish!", true
	}
}

func hungerFit(text string, hunger int) HungerFit {
	switch {
	case hunger <= 2 && domain.ContainsAny(text, domain.LightHungerWords):
		return HungerFitLight
	case hunger >= 4 && domain.ContainsAny(text, domain.HeavyHungerWords):
		return HungerFitHeavy
	default:
		return HungerFitNone
	}
}

// MatchVenueFavorites picks the favorites recorded at venue. With a place id
// only an exact reference match counts. Without one, a favorite whose
// reference equals the venue name is exact and a name substring match in
// either direction is reported as approximate.
func MatchVenueFavorites(venue domain.Venue, favorites []domain.FavoriteDish) ([]domain.FavoriteDish, domain.VenueMatch) {
	placeID := strings.TrimSpace(venue.PlaceID)
	if placeID != "" {
		var exact []domain.FavoriteDish
		for _, fav := range favorites {
			if strings.TrimSpace(fav.RestaurantRef) == placeID {
				exact = append(exact, fav)
			}
		}
		if len(exact) > 0 {
			return exact, domain.VenueMatchExact
		}
		return nil, domain.VenueMatchNone
	}

	name := strings.ToLower(strings.TrimSpace(venue.Name))
	if name == "" {
		return nil, domain.VenueMatchNone
	}

	var exact, approx []domain.FavoriteDish
	for _, fav := range favorites {
		ref := strings.ToLower(strings.TrimSpace(fav.RestaurantRef))
		switch {
		case ref == "":
		case ref == name:
			exact = append(exact, fav)
		case strings.Contains(ref, name) || strings.Contains(name, ref):
			approx = append(approx, fav)
		}
	}
	if len(exact) > 0 {
		return exact, domain.VenueMatchExact
	}
	if len(approx) > 0 {
		return approx, domain.VenueMatchApproximate
	}
	return nil, domain.VenueMatchNone
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
