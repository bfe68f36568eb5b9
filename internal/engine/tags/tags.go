// Package tags decodes the class attribute of a menu item into typed facts.
package tags

import (
	"strings"

	"github.com/crimson-sun/menubot/internal/model"
)

const (
	// CategoryMarker marks an item that sets the station's current category.
	CategoryMarker = "category"

	dietPrefix            = "d"
	unknownAllergenPrefix = "au"
	allergenPrefix        = "a"
)

// Result is the outcome of parsing one class attribute.
type Result struct {
	Facts model.ItemFacts
	// IsCategory is set when the item is a category marker rather than a dish.
	// Facts are empty in that case.
	IsCategory bool
}

// Parse decodes a whitespace-separated class string. Each token matches at
// most one rule, checked in order: category marker, diet, unknown allergen,
// allergen. Unknown-allergen must precede allergen because "a" is a prefix
// of "au". Unrecognised tokens are dropped.
func Parse(class string) Result {
	var (
		diets    []string
		known    []string
		unknowns []string
	)
	for _, tok := range strings.Fields(class) {
		switch {
		case tok == CategoryMarker:
			return Result{IsCategory: true}
		case strings.HasPrefix(tok, dietPrefix):
			diets = appendUnique(diets, strings.TrimPrefix(tok, dietPrefix))
		case strings.HasPrefix(tok, unknownAllergenPrefix):
			unknowns = appendUnique(unknowns, strings.TrimPrefix(tok, unknownAllergenPrefix))
		case strings.HasPrefix(tok, allergenPrefix):
			known = appendUnique(known, strings.TrimPrefix(tok, allergenPrefix))
		}
	}
	return Result{Facts: model.ItemFacts{
		Diets:               diets,
		KnownAllergens:      known,
		HasUnknownAllergens: len(unknowns) > 0,
	}}
}

// Allergens returns the dish-level allergen list for the facts: nil when any
// unknown-allergen marker was seen, otherwise a non-nil copy of the known set.
func Allergens(f model.ItemFacts) []string {
	if f.HasUnknownAllergens {
		return nil
	}
	out := make([]string, len(f.KnownAllergens))
	copy(out, f.KnownAllergens)
	return out
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
