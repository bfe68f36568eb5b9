// Package extract walks a menu page and produces raw dish records.
package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/crimson-sun/menubot/internal/engine/icon"
	"github.com/crimson-sun/menubot/internal/engine/tags"
	"github.com/crimson-sun/menubot/internal/model"
)

// Markup vocabulary of the menu page.
const (
	StationClass  = "menu-details-station"
	ItemClass     = "menu-details-station-item"
	CategoryClass = "category"
	NameClass     = "menu-name"
	ItemNameClass = "menu-item-name"
)

var (
	isStation  = hasClass(StationClass)
	isItem     = or(hasClass(CategoryClass), hasClass(ItemClass))
	isDishName = childOf(hasClass(NameClass), or(hasClass(ItemNameClass), hasTag("a")))
)

// Dishes parses doc and returns one record per qualifying item, in document
// order. Stations outside the allow-list and items without an icon mapping
// are left out silently. A station without a name or a kept item without a
// name node fails the whole extraction.
func Dishes(doc model.RawDocument) ([]model.RawDish, error) {
	root, err := html.Parse(strings.NewReader(doc.HTML))
	if err != nil {
		return nil, fmt.Errorf("extract: %w: %v", model.ErrMalformedDocument, err)
	}

	var out []model.RawDish
	for _, station := range findAll(root, isStation) {
		h2 := findFirst(station, hasTag("h2"))
		if h2 == nil {
			return nil, fmt.Errorf("extract: station without h2 name: %w", model.ErrMalformedDocument)
		}
		name := Text(h2)
		if !icon.Allowed(name) {
			slog.Debug("skipping station", "station", name)
			continue
		}

		scan := stationScan{station: name}
		for _, item := range findAll(station, isItem) {
			d, ok, err := scan.visit(item)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, d)
			}
		}
	}
	return out, nil
}

// stationScan carries the category label set by the most recent marker item
// of one station. A fresh scan starts with an empty category.
type stationScan struct {
	station  string
	category string
}

// visit handles one item. It returns ok=false for category markers and for
// items the icon table skips.
func (s *stationScan) visit(item *html.Node) (model.RawDish, bool, error) {
	parsed := tags.Parse(getAttr(item, "class"))
	if parsed.IsCategory {
		s.category = Text(item)
		return model.RawDish{}, false, nil
	}

	ic, ok := icon.Select(s.station, s.category, parsed.Facts)
	if !ok {
		slog.Debug("skipping item", "station", s.station, "category", s.category)
		return model.RawDish{}, false, nil
	}

	nameNode := findFirst(item, isDishName)
	if nameNode == nil {
		return model.RawDish{}, false, fmt.Errorf("extract: station %q category %q: item without name: %w",
			s.station, s.category, model.ErrMalformedDocument)
	}

	return model.RawDish{
		Name:    Text(nameNode),
		Station: s.station,
		Dish: model.Dish{
			Diets:     parsed.Facts.Diets,
			Allergens: tags.Allergens(parsed.Facts),
			Icon:      ic,
		},
	}, true, nil
}
