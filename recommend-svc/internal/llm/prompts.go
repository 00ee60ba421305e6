package llm

const profileSystem = "You are a culinary analyst. Create detailed taste profiles from a diner's favorite dishes. Return valid JSON only."

const profilePrompt = `Analyze these dishes the diner loves and build a taste profile:
%s

Cover preferred spice level (mild, medium, hot), favorite cooking methods, texture
preferences, flavor profiles, cuisines, common ingredients and dish categories.

Return JSON:
{
  "spice_preference": "medium-hot",
  "cooking_methods": ["grilled", "braised"],
  "textures": ["creamy", "tender"],
  "flavor_profiles": ["rich", "aromatic", "savory"],
  "cuisines": ["Indian", "Italian"],
  "key_ingredients": ["tomatoes", "cream", "spices"],
  "dish_categories": ["curries", "pasta"],
  "overall_pattern": "Prefers rich, well-spiced comfort foods with creamy textures"
}`

const predictionSystem = "You are a food taste prediction expert. Predict how well each dish fits the diner's preferences. Return valid JSON only."

const predictionPrompt = `Diner's favorite dishes:
%s
%s
For each menu item below, predict how much the diner would enjoy it (0-100):
%s

Match ingredients and cooking methods from the favorites, spice compatibility,
texture and richness, and cross-cuisine patterns.

Return a JSON object keyed by the exact dish name:
{
  "Dish Name": {
    "prediction_score": 87,
    "reasoning": "Rich tomato curry like the Chicken Tikka Masala you love",
    "confidence": "high"
  }
}

Only include items scoring above 70.`

const (
	profileMaxTokens    = 400
	predictionMaxTokens = 800
)
