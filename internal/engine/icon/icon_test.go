package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crimson-sun/menubot/internal/model"
)

func TestSelect_FixedIcons(t *testing.T) {
	tests := []struct {
		station, category string
		want              string
	}{
		{"Pasta", "Pasta Entrées", Spaghetti},
		{"Pasta", "Vegetable Entrees", Stew},
		{"Hot Food", "Sides", Rice},
		{"World Flavors", "Sides", Rice},
	}
	// Facts that would otherwise pick the vegan icon must not matter.
	facts := model.ItemFacts{Diets: []string{"Vegan"}}
	for _, tt := range tests {
		got, ok := Select(tt.station, tt.category, facts)
		assert.True(t, ok, "%s/%s", tt.station, tt.category)
		assert.Equal(t, tt.want, got, "%s/%s", tt.station, tt.category)
	}
}

func TestSelect_FallsThroughToHeuristic(t *testing.T) {
	facts := model.ItemFacts{KnownAllergens: []string{"Shellfish"}}

	for _, station := range []string{"Hot Food", "World Flavors"} {
		for _, category := range []string{"", "Entrees", "Grill"} {
			got, ok := Select(station, category, facts)
			assert.True(t, ok)
			assert.Equal(t, Crab, got)
		}
	}
}

func TestSelect_Skips(t *testing.T) {
	tests := []struct{ station, category string }{
		{"Calzones", ""},
		{"Calzones", "Sides"},
		{"Pasta", ""},
		{"Pasta", "Sides"},
		{"Deli", "Sides"},
		{"pasta", "Pasta Entrées"},
	}
	for _, tt := range tests {
		_, ok := Select(tt.station, tt.category, model.ItemFacts{})
		assert.False(t, ok, "%s/%s should be skipped", tt.station, tt.category)
	}
}

func TestGuess_Priority(t *testing.T) {
	tests := []struct {
		name  string
		facts model.ItemFacts
		want  string
	}{
		{"vegan beats fish", model.ItemFacts{Diets: []string{"Vegan"}, KnownAllergens: []string{"Fish"}}, Seedling},
		{"vegan beats vegetarian", model.ItemFacts{Diets: []string{"Vegetarian", "Vegan"}}, Seedling},
		{"vegetarian beats shellfish", model.ItemFacts{Diets: []string{"Vegetarian"}, KnownAllergens: []string{"Shellfish"}}, Tomato},
		{"fish beats shellfish", model.ItemFacts{KnownAllergens: []string{"Shellfish", "Fish"}}, Fish},
		{"shellfish", model.ItemFacts{KnownAllergens: []string{"Shellfish"}}, Crab},
		{"kosher only", model.ItemFacts{Diets: []string{"Kosher"}}, PoultryLeg},
		{"nothing", model.ItemFacts{}, PoultryLeg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Guess(tt.facts))
		})
	}
}

func TestAllowed(t *testing.T) {
	for _, s := range []string{"Calzones", "Hot Food", "Pasta", "World Flavors"} {
		assert.True(t, Allowed(s), s)
	}
	for _, s := range []string{"", "Deli", "Grill", "hot food"} {
		assert.False(t, Allowed(s), s)
	}
}
