package llm

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"menurank/recommend-svc/internal/domain"
)

// TasteAnalyzer implements the taste-profile and compatibility operations on
// top of the chat client.
type TasteAnalyzer struct {
	client *Client
}

func NewTasteAnalyzer(client *Client) *TasteAnalyzer {
	return &TasteAnalyzer{client: client}
}

func (a *TasteAnalyzer) BuildTasteProfile(ctx context.Context, dishNames []string) (domain.TasteProfile, error) {
	var profile domain.TasteProfile
	prompt := fmt.Sprintf(profilePrompt, bulletList(dishNames))
	if err := a.client.CompleteJSON(ctx, "taste_profile", profileSystem, prompt, profileMaxTokens, &profile); err != nil {
		return domain.TasteProfile{}, fmt.Errorf("failed to build taste profile: %w", err)
	}
	return profile, nil
}

func (a *TasteAnalyzer) PredictCompatibility(ctx context.Context, dishNames []string, profile domain.TasteProfile, candidates []domain.MenuItemCandidate) (map[string]domain.Prediction, error) {
	menu := make([]string, len(candidates))
	for i, item := range candidates {
		menu[i] = item.Name + ": " + item.Description
	}
	prompt := fmt.Sprintf(predictionPrompt, bulletList(dishNames), profileSummary(profile), bulletList(menu))

	var raw map[string]rawPrediction
	if err := a.client.CompleteJSON(ctx, "compatibility", predictionSystem, prompt, predictionMaxTokens, &raw); err != nil {
		return nil, fmt.Errorf("failed to predict compatibility: %w", err)
	}

	out := make(map[string]domain.Prediction, len(raw))
	for name, p := range raw {
		out[name] = domain.Prediction{
			Score:      float64(p.Score),
			Reasoning:  strings.TrimSpace(p.Reasoning),
			Confidence: strings.ToLower(strings.TrimSpace(p.Confidence)),
		}
	}
	return out, nil
}

type rawPrediction struct {
	Score      flexibleScore `json:"prediction_score"`
	Reasoning  string        `json:"reasoning"`
	Confidence string        `json:"confidence"`
}

// flexibleScore accepts 87 as well as "87".
type flexibleScore float64

func (f *flexibleScore) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid prediction_score %q: %w", data, err)
	}
	*f = flexibleScore(v)
	return nil
}

func bulletList(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString("- ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func profileSummary(p domain.TasteProfile) string {
	if p.OverallPattern == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nTaste profile: " + p.OverallPattern)
	if p.SpicePreference != "" {
		b.WriteString("\nSpice preference: " + p.SpicePreference)
	}
	if len(p.FlavorProfiles) > 0 {
		b.WriteString("\nFlavor profiles: " + strings.Join(p.FlavorProfiles, ", "))
	}
	if len(p.Cuisines) > 0 {
		b.WriteString("\nPreferred cuisines: " + strings.Join(p.Cuisines, ", "))
	}
	b.WriteString("\n")
	return b.String()
}
