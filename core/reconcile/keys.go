package reconcile

import (
	"strings"

	"garment-stock/core/catalog"
	"garment-stock/core/normalize"
)

// Normalize returns a copy of item with every attribute canonicalized.
// Unknown types are kept trimmed so validation can report them.
func Normalize(item Item) Item {
	if t, ok := catalog.CanonicalType(item.Type); ok {
		item.Type = t
	} else {
		item.Type = strings.TrimSpace(item.Type)
	}
	item.Code = normalize.Code(item.Code)
	item.Color = normalize.Text(item.Color)
	item.Size = normalize.Size(item.Size)
	item.Fabric = normalize.Text(item.Fabric)
	item.Notes = strings.TrimSpace(item.Notes)
	return item
}

// MakeKey derives the identity key of an item. Empty attributes join as "".
func MakeKey(item Item) string {
	n := Normalize(item)
	return strings.Join([]string{n.Type, n.Code, n.Color, n.Size, n.Fabric}, string(normalize.Separator))
}

// SplitKey returns the five attributes encoded in key, or false if key was not
// produced by MakeKey.
func SplitKey(key string) ([]string, bool) {
	parts := strings.Split(key, string(normalize.Separator))
	if len(parts) != 5 {
		return nil, false
	}
	return parts, true
}
