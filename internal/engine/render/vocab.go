package render

import (
	"fmt"

	"github.com/crimson-sun/menubot/internal/model"
)

// DietWords maps diet tokens to display words. The token set is closed.
var DietWords = map[string]string{
	"Vegan":      "vegan",
	"Vegetarian": "vegetarian",
	"Kosher":     "kosher",
	"Gluten":     "gluten-free",
}

// AllergenWords maps allergen tokens to display words. The token set is closed.
var AllergenWords = map[string]string{
	"Wheat":     "wheat",
	"Soy":       "soy",
	"Milk":      "milk",
	"Peanuts":   "peanuts",
	"TreeNuts":  "treenuts",
	"Shellfish": "shellfish",
	"Fish":      "fish",
	"Eggs":      "eggs",
}

func words(kind string, vocab map[string]string, tokens []string) ([]string, error) {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		w, ok := vocab[tok]
		if !ok {
			return nil, fmt.Errorf("render: %s %q: %w", kind, tok, model.ErrUnknownVocabulary)
		}
		out = append(out, w)
	}
	return out, nil
}
