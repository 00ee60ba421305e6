package domain

import "strings"

// Keyword tables behind every text heuristic in the pipeline. Matching is
// substring based on lowercased name+description, so entries are kept
// specific enough not to fire inside unrelated words.

type Restriction string

const (
	RestrictionVegetarian Restriction = "vegetarian"
	RestrictionVegan      Restriction = "vegan"
	RestrictionGlutenFree Restriction = "gluten-free"
)

// ParseRestriction accepts "Gluten Free", "gluten_free" and similar spellings.
func ParseRestriction(s string) (Restriction, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	r := Restriction(norm)
	_, ok := DietaryBlocklists[r]
	return r, ok
}

var vegetarianBlocked = []string{
	"chicken", "beef", "pork", "lamb", "fish", "seafood", "shrimp", "meat",
	"steak", "bacon", "veal", "duck", "turkey", "salmon", "tuna", "anchovy",
	"prawn", "crab", "lobster", "octopus", "squid", "chorizo", "sausage",
	"prosciutto", "pepperoni",
}

var DietaryBlocklists = map[Restriction][]string{
	RestrictionVegetarian: vegetarianBlocked,
	RestrictionVegan: append(append([]string{}, vegetarianBlocked...),
		"cheese", "cream", "butter", "egg", "milk", "yogurt",
		"honey", "ghee", "paneer", "mozzarella", "parmesan", "mayo",
	),
	RestrictionGlutenFree: {
		"naan", "bread", "pasta", "wheat", "flour", "noodle", "pizza",
		"couscous", "seitan", "barley", "spaghetti", "lasagna", "ramen",
		"udon", "croissant", "breaded",
	},
}

type Craving string

const (
	CravingLight        Craving = "light"
	CravingFresh        Craving = "fresh"
	CravingCarbHeavy    Craving = "carb-heavy"
	CravingProteinHeavy Craving = "protein-heavy"
	CravingSpicy        Craving = "spicy"
	CravingCreamy       Craving = "creamy"
	CravingCrispy       Craving = "crispy"
	CravingComforting   Craving = "comforting"
)

func ParseCraving(s string) (Craving, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	c := Craving(norm)
	_, ok := CravingKeywords[c]
	return c, ok
}

var CravingKeywords = map[Craving][]string{
	CravingLight:        {"light", "fresh", "salad", "soup", "steamed", "grilled", "green", "vegetable"},
	CravingFresh:        {"fresh", "raw", "crudo", "sashimi", "ceviche", "green", "citrus", "tartare"},
	CravingCarbHeavy:    {"pasta", "rice", "bread", "noodle", "pizza", "sandwich", "wrap", "potato", "bomba", "arroz", "cake", "pastel", "meringue"},
	CravingProteinHeavy: {"chicken", "beef", "pork", "fish", "seafood", "meat", "protein", "foie", "anchovy", "bonito", "shrimp", "octopus", "pulpo"},
	CravingSpicy:        {"spicy", "hot", "chili", "pepper", "curry", "szechuan", "jalapeño", "jalapeno", "piment", "espelette", "guindilla"},
	CravingCreamy:       {"creamy", "cream", "cheese", "butter", "sauce", "dip", "mayo", "pastela", "anglaise", "cultured", "moscatel"},
	CravingCrispy:       {"crispy", "fried", "crunchy", "golden", "battered", "toasted", "scorched"},
	CravingComforting:   {"comfort", "warm", "hearty", "rich", "home", "traditional", "basque", "butter"},
}

// AntiCravingKeywords signal the opposite of a craving; an item showing them
// instead of the craving's own keywords is penalised.
var AntiCravingKeywords = map[Craving][]string{
	CravingLight:        {"fried", "creamy", "cheese", "heavy", "loaded", "burger", "double"},
	CravingFresh:        {"fried", "braised", "stew", "smoked", "cured", "confit"},
	CravingCarbHeavy:    {"salad", "lettuce", "low-carb", "keto", "carpaccio"},
	CravingProteinHeavy: {"salad", "sorbet", "fruit", "vegetable", "veggie"},
	CravingSpicy:        {"mild", "plain", "vanilla"},
	CravingCreamy:       {"vinaigrette", "broth", "clear", "sorbet"},
	CravingCrispy:       {"steamed", "soup", "stew", "mashed", "puree", "poached"},
	CravingComforting:   {"raw", "cold", "ceviche", "tartare", "carpaccio"},
}

var SpicyKeywords = []string{
	"spicy", "hot", "chili", "pepper", "curry", "piment", "espelette",
	"guindilla", "jalapeño", "jalapeno", "szechuan", "sichuan", "sriracha",
	"harissa", "vindaloo",
}

var (
	LightHungerWords = []string{"light", "salad", "soup", "small"}
	HeavyHungerWords = []string{"heavy", "large", "big", "filling", "rich"}
)

// SimilarityIndicators are the cuisine, cooking-method and flavor tokens two
// dishes must share to count as similar. Values are the plural phrasing used
// when several favorites share the token.
var SimilarityIndicators = map[string]string{
	"curry":    "curries",
	"pasta":    "pasta dishes",
	"noodle":   "noodle dishes",
	"ramen":    "ramen bowls",
	"sushi":    "sushi rolls",
	"pizza":    "pizzas",
	"taco":     "tacos",
	"burger":   "burgers",
	"dumpling": "dumplings",
	"risotto":  "risottos",
	"stew":     "stews",
	"soup":     "soups",
	"salad":    "salads",
	"tandoori": "tandoori dishes",
	"grilled":  "grilled dishes",
	"fried":    "fried dishes",
	"roasted":  "roasted dishes",
	"braised":  "braised dishes",
	"smoked":   "smoked dishes",
	"steamed":  "steamed dishes",
	"bbq":      "barbecue dishes",
	"tempura":  "tempura dishes",
	"teriyaki": "teriyaki dishes",
	"creamy":   "creamy dishes",
	"spicy":    "spicy dishes",
	"truffle":  "truffle dishes",
}

// ImpliedIndicators expands dish names that imply indicators without naming them.
var ImpliedIndicators = map[string][]string{
	"butter chicken": {"curry", "creamy"},
	"makhani":        {"curry", "creamy"},
	"tikka masala":   {"curry", "creamy"},
	"masala":         {"curry"},
	"korma":          {"curry", "creamy"},
	"vindaloo":       {"curry", "spicy"},
	"curries":        {"curry"},
	"laksa":          {"curry", "noodle", "spicy"},
	"tikka":          {"tandoori", "grilled"},
	"kebab":          {"grilled"},
	"skewer":         {"grilled"},
	"barbecue":       {"bbq"},
	"alfredo":        {"pasta", "creamy"},
	"carbonara":      {"pasta", "creamy"},
	"mac and cheese": {"pasta", "creamy"},
	"spaghetti":      {"pasta"},
	"linguine":       {"pasta"},
	"penne":          {"pasta"},
	"lasagna":        {"pasta"},
	"ravioli":        {"pasta"},
	"gnocchi":        {"pasta"},
	"udon":           {"noodle"},
	"soba":           {"noodle"},
	"pho":            {"noodle", "soup"},
	"pad thai":       {"noodle"},
	"lo mein":        {"noodle"},
	"nigiri":         {"sushi"},
	"sashimi":        {"sushi"},
	"maki roll":      {"sushi"},
	"katsu":          {"fried"},
	"schnitzel":      {"fried"},
	"nuggets":        {"fried"},
	"bisque":         {"soup", "creamy"},
	"chowder":        {"soup", "creamy"},
	"szechuan":       {"spicy"},
	"sichuan":        {"spicy"},
}

var ProteinTokens = []string{
	"chicken", "beef", "pork", "lamb", "fish", "salmon", "tuna", "shrimp",
	"prawn", "tofu", "paneer", "duck", "crab", "lobster", "octopus", "squid",
}

// ContainsAny reports whether text contains any keyword. text must already be lowercased.
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
