// Package testdata embeds a menu page fixture for engine and pipeline tests.
package testdata

import (
	_ "embed"
	"time"

	"github.com/crimson-sun/menubot/internal/model"
)

//go:embed menu.html
var menuHTML string

// FixtureTime is the fetch time stamped on the fixture document.
var FixtureTime = time.Date(2026, 10, 16, 11, 0, 0, 0, time.UTC)

// MenuHTML returns the raw fixture markup.
func MenuHTML() string {
	return menuHTML
}

// Menu returns the fixture as a raw document.
//
// Expected rendering, in order:
//
//	Meat entrées:       Roast Chicken, Baked Cod, Shrimp Scampi
//	Vegetarian entrées: Marinara, Alfredo, Ratatouille, Roasted Vegetables, Tofu Curry
//	Sides:              Steamed Rice
func Menu() model.RawDocument {
	return model.RawDocument{
		FetchedAt: FixtureTime,
		Source:    "fixture",
		URI:       "testdata/menu.html",
		HTML:      menuHTML,
	}
}
