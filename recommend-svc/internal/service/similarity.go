package service

import (
	"sort"
	"strings"

	"menurank/recommend-svc/internal/domain"
)

type DishSimilarity struct {
	Indicators []string
	Proteins   []string
}

// Similar requires a shared indicator. A shared protein on its own is not
// enough: grilled chicken and fried chicken nuggets are different dishes.
func (s DishSimilarity) Similar() bool {
	return len(s.Indicators) > 0
}

func CompareDishes(a, b string) DishSimilarity {
	a, b = strings.ToLower(a), strings.ToLower(b)
	return DishSimilarity{
		Indicators: intersect(indicatorsIn(a), indicatorsIn(b)),
		Proteins:   intersect(tokensIn(a, domain.ProteinTokens), tokensIn(b, domain.ProteinTokens)),
	}
}

func indicatorsIn(text string) map[string]bool {
	found := make(map[string]bool)
	for token := range domain.SimilarityIndicators {
		if strings.Contains(text, token) {
			found[token] = true
		}
	}
	for alias, implied := range domain.ImpliedIndicators {
		if !strings.Contains(text, alias) {
			continue
		}
		for _, token := range implied {
			found[token] = true
		}
	}
	return found
}

func tokensIn(text string, tokens []string) map[string]bool {
	found := make(map[string]bool)
	for _, token := range tokens {
		if strings.Contains(text, token) {
			found[token] = true
		}
	}
	return found
}

func intersect(a, b map[string]bool) []string {
	var out []string
	for k := range a {
		if b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
