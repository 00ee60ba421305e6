package service

import "menurank/recommend-svc/internal/domain"

// FilterDietary drops every item whose text hits the blocklist of any
// recognised restriction. Unknown tags are ignored; with none recognised the
// input is returned unchanged.
func FilterDietary(items []domain.MenuItemCandidate, restrictions []string) []domain.MenuItemCandidate {
	var blocklists [][]string
	seen := make(map[domain.Restriction]bool)
	for _, raw := range restrictions {
		r, ok := domain.ParseRestriction(raw)
		if !ok || seen[r] {
			continue
		}
		seen[r] = true
		blocklists = append(blocklists, domain.DietaryBlocklists[r])
	}
	if len(blocklists) == 0 {
		return items
	}

	kept := make([]domain.MenuItemCandidate, 0, len(items))
	for _, item := range items {
		if violates(item.Text(), blocklists) {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

func violates(text string, blocklists [][]string) bool {
	for _, blocked := range blocklists {
		if domain.ContainsAny(text, blocked) {
			return true
		}
	}
	return false
}
