package pantry

import (
	"sort"

	"forkful/models"
)

// Normalize flattens raw find-by-ingredients results and ranks them:
// highest match score first, then fewest missing ingredients. The sort is
// stable, so ties beyond that keep the provider's order. No I/O.
func Normalize(raw []models.RawMatchResult) []models.NormalizedMatch {
	out := make([]models.NormalizedMatch, 0, len(raw))
	for _, r := range raw {
		title := r.Title
		if title == "" {
			title = "Untitled"
		}

		used := r.UsedIngredientCount
		missed := r.MissedIngredientCount
		var score float64
		if used+missed > 0 {
			score = float64(used) / float64(used+missed)
		}

		out = append(out, models.NormalizedMatch{
			ID:                    r.ID,
			Title:                 title,
			Image:                 r.Image,
			UsedIngredientCount:   used,
			MissedIngredientCount: missed,
			UsedIngredients:       flatten(r.UsedIngredients),
			MissedIngredients:     flatten(r.MissedIngredients),
			MatchScore:            score,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchScore != out[j].MatchScore {
			return out[i].MatchScore > out[j].MatchScore
		}
		return out[i].MissedIngredientCount < out[j].MissedIngredientCount
	})
	return out
}

// flatten maps each descriptor to its original text, falling back to the
// bare name, preserving upstream order. Absent input yields an empty
// slice, never nil, so the JSON output is always an array.
func flatten(refs []models.IngredientRef) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.Original != "" {
			names = append(names, ref.Original)
		} else {
			names = append(names, ref.Name)
		}
	}
	return names
}
