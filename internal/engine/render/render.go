// Package render turns a dish into the text of one message field and picks
// its display group.
package render

import (
	"github.com/crimson-sun/menubot/internal/engine/icon"
	"github.com/crimson-sun/menubot/internal/model"
)

// AllergensUnknown is the allergen clause for dishes without reliable data.
const AllergensUnknown = "allergens unknown"

// Field renders a dish as "<icon> <diets>[; ]<allergens>" and returns the
// group it belongs to. Every field is emphasized.
func Field(name string, d model.Dish) (model.Field, model.Group, error) {
	diets, err := DietPhrase(d.Diets)
	if err != nil {
		return model.Field{}, 0, err
	}
	clause, err := AllergenClause(d)
	if err != nil {
		return model.Field{}, 0, err
	}

	value := d.Icon + " " + diets
	if diets != "" && clause != "" {
		value += "; "
	}
	value += clause

	return model.Field{Label: name, Value: value, Emphasized: true}, GroupOf(d), nil
}

// DietPhrase lists the diet words of a dish. Vegetarian is dropped when
// Vegan is present since vegan implies it.
func DietPhrase(diets []string) (string, error) {
	vegan := false
	for _, d := range diets {
		if d == "Vegan" {
			vegan = true
			break
		}
	}
	kept := make([]string, 0, len(diets))
	for _, d := range diets {
		if vegan && d == "Vegetarian" {
			continue
		}
		kept = append(kept, d)
	}

	ws, err := words("diet", DietWords, kept)
	if err != nil {
		return "", err
	}
	return JoinList(ws), nil
}

// AllergenClause is "allergens unknown", "contains <list>", or empty when
// the dish is known to carry no allergens.
func AllergenClause(d model.Dish) (string, error) {
	if !d.AllergensKnown() {
		return AllergensUnknown, nil
	}
	ws, err := words("allergen", AllergenWords, d.Allergens)
	if err != nil {
		return "", err
	}
	if len(ws) == 0 {
		return "", nil
	}
	return "contains " + JoinList(ws), nil
}

// GroupOf classifies a dish from its icon and its full diet set.
func GroupOf(d model.Dish) model.Group {
	switch {
	case d.Icon == icon.Side:
		return model.GroupSide
	case d.HasDiet("Vegetarian"):
		return model.GroupVegetarian
	default:
		return model.GroupMeat
	}
}
