// Package search ranks contacts against a query term with a two-tier
// prefix-over-substring weighting, matching on first name, last name and
// primary phone.
package search

import (
	"sort"
	"strings"

	"personal-crm/internal/models"
)

// MinTermLength is the shortest term worth searching for. Callers short-circuit
// shorter terms to an empty result before ranking.
const MinTermLength = 2

// Rank filters candidates to those containing the term (case-insensitive) and
// orders them by relevance: prefix matches first, then substring-only matches,
// each tier sorted by first name then last name so equal ranks never come back
// in an ambiguous order.
func Rank(candidates []models.Contact, term string) []models.Contact {
	term = strings.ToLower(strings.TrimSpace(term))

	var matched []models.Contact
	for _, c := range candidates {
		if matches(c, term) {
			matched = append(matched, c)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		ti, tj := tier(matched[i], term), tier(matched[j], term)
		if ti != tj {
			return ti < tj
		}
		fi, fj := strings.ToLower(matched[i].FirstName), strings.ToLower(matched[j].FirstName)
		if fi != fj {
			return fi < fj
		}
		return strings.ToLower(matched[i].LastName) < strings.ToLower(matched[j].LastName)
	})

	return matched
}

// RankPage is Rank with an offset/limit window applied after ordering.
func RankPage(candidates []models.Contact, term string, offset, limit int) []models.Contact {
	return Page(Rank(candidates, term), offset, limit)
}

// Page applies an offset/limit window to an already ranked list, so callers
// that need both the total and a page rank only once.
func Page(ranked []models.Contact, offset, limit int) []models.Contact {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(ranked) {
		return nil
	}
	end := len(ranked)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return ranked[offset:end]
}

func matches(c models.Contact, term string) bool {
	return strings.Contains(strings.ToLower(c.FirstName), term) ||
		strings.Contains(strings.ToLower(c.LastName), term) ||
		strings.Contains(strings.ToLower(c.Phone1), term)
}

// tier is 0 when the term is a prefix of any matched field, 1 otherwise.
func tier(c models.Contact, term string) int {
	if strings.HasPrefix(strings.ToLower(c.FirstName), term) ||
		strings.HasPrefix(strings.ToLower(c.LastName), term) ||
		strings.HasPrefix(strings.ToLower(c.Phone1), term) {
		return 0
	}
	return 1
}
