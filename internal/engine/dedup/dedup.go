// Package dedup merges dish records that share a name.
package dedup

import (
	"log/slog"

	"github.com/crimson-sun/menubot/internal/engine/icon"
	"github.com/crimson-sun/menubot/internal/model"
)

// Resolve folds raw records into one record per dish name. Output order is
// the order in which each name first appeared; a later record that wins the
// merge takes over that position.
func Resolve(raws []model.RawDish) []model.RawDish {
	if len(raws) == 0 {
		return nil
	}

	index := make(map[string]int, len(raws))
	out := make([]model.RawDish, 0, len(raws))
	for _, r := range raws {
		i, exists := index[r.Name]
		if !exists {
			index[r.Name] = len(out)
			out = append(out, r)
			continue
		}
		existing := out[i]
		out[i] = Merge(existing, r)
		slog.Debug("duplicate dish",
			"name", r.Name,
			"station", r.Station,
			"existing_icon", existing.Dish.Icon,
			"replaced", existing.Dish.Icon == icon.Side)
	}
	return out
}

// Merge picks the survivor between an established record and a later one
// with the same name. Side entries are placeholders: any later record
// replaces them. Any other established entry is kept.
func Merge(existing, next model.RawDish) model.RawDish {
	if existing.Dish.Icon == icon.Side {
		return next
	}
	return existing
}
