// Package catalog enumerates the legal size tokens of every garment type.
//
// The per-type lists are authoritative: writes are validated against the same
// ordered list that is offered to users as choices.
package catalog

import (
	"strconv"
	"strings"

	"garment-stock/core/normalize"
)

// Garment types known to the catalog.
const (
	TypeShirt    = "Shirt"
	TypeJacket   = "Jacket"
	TypeCoverall = "Coverall"
	TypePants    = "Pants"
	TypeLapcod   = "Lapcod"
)

var alphaLadder = []string{"M", "L", "XL", "2XL", "3XL", "4XL", "5XL", "6XL"}

var types = []string{TypeShirt, TypeJacket, TypeCoverall, TypePants, TypeLapcod}

var sizeSets = map[string][]string{
	TypeShirt:    alphaLadder,
	TypeJacket:   alphaLadder,
	TypeCoverall: append(append([]string{}, alphaLadder...), numericRange(36, 60, 1)...),
	TypePants:    numericRange(2, 60, 2),
	TypeLapcod:   numericRange(2, 60, 1),
}

// lookup indexes every size set for membership checks.
var lookup = func() map[string]map[string]struct{} {
	m := make(map[string]map[string]struct{}, len(sizeSets))
	for t, sizes := range sizeSets {
		set := make(map[string]struct{}, len(sizes))
		for _, s := range sizes {
			set[s] = struct{}{}
		}
		m[t] = set
	}
	return m
}()

// Types returns the garment types in display order.
func Types() []string {
	return append([]string{}, types...)
}

// CanonicalType resolves a type name case-insensitively.
func CanonicalType(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, t := range types {
		if strings.EqualFold(t, raw) {
			return t, true
		}
	}
	return "", false
}

// SizesFor returns the ordered size choices for a garment type.
// Unknown types have no sizes.
func SizesFor(garmentType string) []string {
	sizes, ok := sizeSets[garmentType]
	if !ok {
		return nil
	}
	return append([]string{}, sizes...)
}

// IsValidSize reports whether raw, once normalized, is offered for the type.
func IsValidSize(garmentType, raw string) bool {
	set, ok := lookup[garmentType]
	if !ok {
		return false
	}
	_, ok = set[normalize.Size(raw)]
	return ok
}

// FlatAllowed reports membership in the loose type-agnostic set (alpha ladder
// plus every integer in [2,60]). It is used for diagnostics only.
func FlatAllowed(raw string) bool {
	s := normalize.Size(raw)
	for _, a := range alphaLadder {
		if s == a {
			return true
		}
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 2 && n <= 60
}

func numericRange(from, to, step int) []string {
	out := make([]string, 0, (to-from)/step+1)
	for s := from; s <= to; s += step {
		out = append(out, strconv.Itoa(s))
	}
	return out
}
