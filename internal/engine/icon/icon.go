// Package icon picks the presentation emoji for a dish.
//
// Selection is two ordered first-match tables: a fixed (station, category)
// table that can pin an icon, defer to the heuristic, or skip the item; and
// a heuristic table over the item's diet and allergen facts.
package icon

import "github.com/crimson-sun/menubot/internal/model"

// Icon vocabulary.
const (
	Spaghetti  = ":spaghetti:"
	Stew       = ":stew:"
	Rice       = ":rice:"
	Seedling   = ":seedling:"
	Tomato     = ":tomato:"
	Fish       = ":fish:"
	Crab       = ":crab:"
	PoultryLeg = ":poultry_leg:"
)

// Side is the icon that classifies a dish as a side. It is also the lowest
// priority icon when duplicate dish names are merged.
const Side = Rice

// AnyCategory matches every category label of a station in StationRules.
const AnyCategory = "*"

// Stations is the allow-list of stations whose items are considered at all.
var Stations = []string{"Calzones", "Hot Food", "Pasta", "World Flavors"}

// StationRule maps a (station, category) pair to a fixed icon. An empty Icon
// defers to the heuristic.
type StationRule struct {
	Station  string
	Category string
	Icon     string
}

// StationRules is evaluated top to bottom. A pair that matches no rule is
// skipped, which excludes every Calzones item and any Pasta item outside the
// two listed categories.
var StationRules = []StationRule{
	{Station: "Pasta", Category: "Pasta Entrées", Icon: Spaghetti},
	{Station: "Pasta", Category: "Vegetable Entrees", Icon: Stew},
	{Station: "Hot Food", Category: "Sides", Icon: Rice},
	{Station: "World Flavors", Category: "Sides", Icon: Rice},
	{Station: "World Flavors", Category: AnyCategory},
	{Station: "Hot Food", Category: AnyCategory},
}

// FactRule assigns Icon when Match reports true.
type FactRule struct {
	Name  string
	Match func(model.ItemFacts) bool
	Icon  string
}

// FactRules is a best guess: diet signals beat allergen signals, and an item
// with no signal is assumed to be meat. The last rule always matches.
var FactRules = []FactRule{
	{Name: "vegan", Match: func(f model.ItemFacts) bool { return f.HasDiet("Vegan") }, Icon: Seedling},
	{Name: "vegetarian", Match: func(f model.ItemFacts) bool { return f.HasDiet("Vegetarian") }, Icon: Tomato},
	{Name: "fish", Match: func(f model.ItemFacts) bool { return f.HasAllergen("Fish") }, Icon: Fish},
	{Name: "shellfish", Match: func(f model.ItemFacts) bool { return f.HasAllergen("Shellfish") }, Icon: Crab},
	{Name: "meat", Match: func(model.ItemFacts) bool { return true }, Icon: PoultryLeg},
}

// Allowed reports whether items of the named station are processed.
func Allowed(station string) bool {
	for _, s := range Stations {
		if s == station {
			return true
		}
	}
	return false
}

// Select returns the icon for an item, or ok=false when the item should be
// left out of the menu.
func Select(station, category string, facts model.ItemFacts) (icon string, ok bool) {
	for _, r := range StationRules {
		if r.Station != station {
			continue
		}
		if r.Category != AnyCategory && r.Category != category {
			continue
		}
		if r.Icon != "" {
			return r.Icon, true
		}
		return Guess(facts), true
	}
	return "", false
}

// Guess applies FactRules to facts.
func Guess(facts model.ItemFacts) string {
	for _, r := range FactRules {
		if r.Match(facts) {
			return r.Icon
		}
	}
	return PoultryLeg
}
