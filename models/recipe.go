package models

import "encoding/json"

// SearchQuery carries the resolved parameters for a complex search call.
type SearchQuery struct {
	Term         string
	Diet         string
	Cuisine      string
	MaxReadyTime int
}

// IngredientRef is the provider's per-ingredient descriptor inside a
// find-by-ingredients result. Original holds the provider's original text
// ("2 cups flour"); Name is the bare ingredient name.
type IngredientRef struct {
	Name     string `json:"name"`
	Original string `json:"original"`
}

// RawMatchResult is one recipe as the provider returns it from
// findByIngredients. The id is kept as raw JSON so a missing or odd-shaped
// identifier passes through untouched.
type RawMatchResult struct {
	ID                    json.RawMessage `json:"id,omitempty"`
	Title                 string          `json:"title"`
	Image                 string          `json:"image,omitempty"`
	UsedIngredientCount   int             `json:"usedIngredientCount"`
	MissedIngredientCount int             `json:"missedIngredientCount"`
	UsedIngredients       []IngredientRef `json:"usedIngredients"`
	MissedIngredients     []IngredientRef `json:"missedIngredients"`
}

// NormalizedMatch is the ranked, flattened form served to clients.
type NormalizedMatch struct {
	ID                    json.RawMessage `json:"id,omitempty"`
	Title                 string          `json:"title"`
	Image                 string          `json:"image,omitempty"`
	UsedIngredientCount   int             `json:"usedIngredientCount"`
	MissedIngredientCount int             `json:"missedIngredientCount"`
	UsedIngredients       []string        `json:"usedIngredients"`
	MissedIngredients     []string        `json:"missedIngredients"`
	MatchScore            float64         `json:"matchScore"`
}
