// Package recommend selects bounded subsets of the reference catalogs from a
// user's stated preferences. All functions are pure and keep catalog order.
package recommend

import "mindfullearner/internal/models"

const (
	TrendingLimit    = 3
	RecommendedLimit = 5
	HobbyLimit       = 5
)

// Trending keeps roadmaps flagged as trending, up to TrendingLimit.
func Trending(catalog []models.Roadmap) []models.Roadmap {
	out := make([]models.Roadmap, 0, TrendingLimit)
	for _, r := range catalog {
		if len(out) == TrendingLimit {
			break
		}
		if r.IsTrending {
			out = append(out, r)
		}
	}
	return out
}

// Roadmaps keeps rows whose category equals field or domain, up to
// RecommendedLimit. Each catalog row is visited once, so a row matching both
// appears once.
func Roadmaps(catalog []models.Roadmap, field, domain string) []models.Roadmap {
	out := make([]models.Roadmap, 0, RecommendedLimit)
	for _, r := range catalog {
		if len(out) == RecommendedLimit {
			break
		}
		if r.Category == field || r.Category == domain {
			out = append(out, r)
		}
	}
	return out
}

// Hobbies keeps rows whose category is in categories and whose difficulty
// equals skill exactly, up to HobbyLimit. No categories means no results.
func Hobbies(catalog []models.Hobby, categories []string, skill string) []models.Hobby {
	out := make([]models.Hobby, 0, HobbyLimit)
	if len(categories) == 0 {
		return out
	}

	wanted := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		wanted[c] = struct{}{}
	}

	for _, h := range catalog {
		if len(out) == HobbyLimit {
			break
		}
		if _, ok := wanted[h.Category]; ok && h.DifficultyLevel == skill {
			out = append(out, h)
		}
	}
	return out
}
