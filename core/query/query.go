package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"garment-stock/core/reconcile"
)

// Criterion names a sort order.
type Criterion string

const (
	// SortNone keeps the input order.
	SortNone Criterion = ""
	// SortDate orders by AddedAt, newest first.
	SortDate Criterion = "date"
	// SortType orders by garment type.
	SortType Criterion = "type"
	// SortSize orders numeric sizes before alpha sizes.
	SortSize Criterion = "size"
)

// Filter selects records. Empty fields match everything.
type Filter struct {
	Type   string
	Fabric string
}

// Options is one complete view configuration.
type Options struct {
	TypeFilter   string
	FabricFilter string
	SortBy       Criterion
}

// ParseCriterion maps a user supplied sort name to a Criterion.
func ParseCriterion(s string) (Criterion, error) {
	switch c := Criterion(strings.ToLower(strings.TrimSpace(s))); c {
	case SortNone, SortDate, SortType, SortSize:
		return c, nil
	default:
		return SortNone, fmt.Errorf("unknown sort criterion %q (use date, type or size)", s)
	}
}

// FilterRecords keeps a record iff its type equals f.Type (when set) and its
// fabric equals f.Fabric case-insensitively (when set).
func FilterRecords(records []reconcile.Record, f Filter) []reconcile.Record {
	out := make([]reconcile.Record, 0, len(records))
	for _, r := range records {
		if f.Type != "" && r.Type != f.Type {
			continue
		}
		if f.Fabric != "" && !strings.EqualFold(r.Fabric, f.Fabric) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Sort returns a sorted copy of records. The sort is stable.
func Sort(records []reconcile.Record, c Criterion) []reconcile.Record {
	out := append([]reconcile.Record{}, records...)

	switch c {
	case SortDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AddedAt.After(out[j].AddedAt)
		})
	case SortType:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Type < out[j].Type
		})
	case SortSize:
		sort.SliceStable(out, func(i, j int) bool {
			return LessSize(out[i].Size, out[j].Size)
		})
	}
	return out
}

// LessSize orders size tokens: integers by value, then everything else
// lexicographically.
func LessSize(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// Apply filters then sorts.
func Apply(records []reconcile.Record, opts Options) []reconcile.Record {
	filtered := FilterRecords(records, Filter{Type: opts.TypeFilter, Fabric: opts.FabricFilter})
	return Sort(filtered, opts.SortBy)
}

// EmptyMessage is the text shown when a view has no rows.
func EmptyMessage(opts Options) string {
	if opts.TypeFilter != "" || opts.FabricFilter != "" {
		return "No items for this filter."
	}
	return "Inventory is empty."
}
