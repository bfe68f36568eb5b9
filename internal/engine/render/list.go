package render

import "strings"

// JoinList renders labels as an English list: "", "a", "a and b",
// "a, b, and c".
func JoinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		last := len(items) - 1
		return strings.Join(items[:last], ", ") + ", and " + items[last]
	}
}
