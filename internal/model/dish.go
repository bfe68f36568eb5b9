package model

// ItemFacts is the tag set decoded from one menu item's class attribute.
// When HasUnknownAllergens is set, KnownAllergens must not be trusted.
type ItemFacts struct {
	Diets               []string // ordered, no duplicates
	KnownAllergens      []string // ordered, no duplicates
	HasUnknownAllergens bool
}

// HasDiet reports whether the facts carry the given diet token.
func (f ItemFacts) HasDiet(diet string) bool {
	return contains(f.Diets, diet)
}

// HasAllergen reports whether the facts carry the given known allergen token.
func (f ItemFacts) HasAllergen(allergen string) bool {
	return contains(f.KnownAllergens, allergen)
}

// Dish is one classified menu entry, keyed by its display name.
type Dish struct {
	Diets     []string
	Allergens []string // nil means the allergens are unknown
	Icon      string
}

// AllergensKnown reports whether the dish carries reliable allergen data.
func (d Dish) AllergensKnown() bool {
	return d.Allergens != nil
}

// HasDiet reports whether the dish carries the given diet token.
func (d Dish) HasDiet(diet string) bool {
	return contains(d.Diets, diet)
}

// RawDish is a (name, dish) pair in document order, before deduplication.
type RawDish struct {
	Name    string
	Station string
	Dish    Dish
}

// Group is the display section a dish lands in.
type Group int

const (
	GroupMeat Group = iota
	GroupVegetarian
	GroupSide
)

func (g Group) String() string {
	switch g {
	case GroupMeat:
		return "meat"
	case GroupVegetarian:
		return "vegetarian"
	case GroupSide:
		return "side"
	default:
		return "unknown"
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
