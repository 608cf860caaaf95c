package reconcile

import (
	"context"
	"time"
)

// Item is a write request for a quantity of one garment variant.
type Item struct {
	// Type is the garment category (Shirt, Jacket, Coverall, Pants, Lapcod).
	Type string `json:"type" validate:"required,garment_type"`

	// Code is the free-text internal code.
	Code string `json:"code"`

	// Color is the free-text color.
	Color string `json:"color"`

	// Size must be offered by the catalog for Type.
	Size string `json:"size" validate:"garment_size"`

	// Fabric is optional.
	Fabric string `json:"fabric"`

	// Qty is the quantity to add or remove.
	Qty int `json:"qty" validate:"gt=0"`

	// Notes overwrite the stored notes when non-empty. Ignored on subtract.
	Notes string `json:"notes"`
}

// Record is a persisted inventory line.
type Record struct {
	// Key is derived from the normalized attributes; callers never set it.
	Key string `json:"key"`

	Type   string `json:"type"`
	Code   string `json:"code"`
	Color  string `json:"color"`
	Size   string `json:"size"`
	Fabric string `json:"fabric"`

	// Qty is the on-hand quantity, always positive while stored.
	Qty int `json:"qty"`

	Notes string `json:"notes"`

	// AddedAt is set when the key is first created and never changes afterwards.
	AddedAt time.Time `json:"addedAt"`
}

// Item returns the attributes of the record as a write request for qty units.
func (r Record) Item(qty int) Item {
	return Item{
		Type:   r.Type,
		Code:   r.Code,
		Color:  r.Color,
		Size:   r.Size,
		Fabric: r.Fabric,
		Qty:    qty,
	}
}

// Store is the persistence contract consumed by the Engine.
// Implementations exist for an in-memory map, Redis, MongoDB and SQL tables.
type Store interface {
	// GetAll returns every stored record, in no particular order.
	GetAll(ctx context.Context) ([]Record, error)

	// GetByKey returns the record stored under key, or nil when absent.
	GetByKey(ctx context.Context, key string) (*Record, error)

	// Upsert replaces or inserts the record under rec.Key.
	Upsert(ctx context.Context, rec Record) error

	// UpdateQuantity sets the quantity of an existing record, leaving other fields untouched.
	UpdateQuantity(ctx context.Context, key string, qty int) error

	// Delete removes the record under key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// BatchDeleter is implemented by stores that can delete many keys in one round-trip.
type BatchDeleter interface {
	DeleteBatch(ctx context.Context, keys []string) error
}

// ActionType represents the type of repair action planned by the integrity scan.
type ActionType string

const (
	// ActionRekey moves a record to its derived key, merging with any record already there.
	ActionRekey ActionType = "rekey"
	// ActionPurge deletes a record whose quantity is not positive.
	ActionPurge ActionType = "purge"
)

// Action represents a planned repair.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the stored key of the record.
	Key string `json:"key"`

	// Target is the derived key for rekey actions.
	Target string `json:"target,omitempty"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// ScanResult reports the invariant violations of one stored record.
type ScanResult struct {
	Key        string   `json:"key"`
	DerivedKey string   `json:"derived_key"`
	Type       string   `json:"type"`
	Size       string   `json:"size"`
	Qty        int      `json:"qty"`
	Problems   []string `json:"problems"`
}

// ReconcilePlan contains scan results and planned actions.
type ReconcilePlan struct {
	// Results lists every record with at least one problem.
	Results []ScanResult `json:"results"`

	// Actions contains planned repairs.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a scan.
type PlanSummary struct {
	TotalRecords  int `json:"total_records"`
	KeyMismatches int `json:"key_mismatches"`
	NonPositive   int `json:"non_positive"`
	InvalidSizes  int `json:"invalid_sizes"`
	RekeyActions  int `json:"rekey_actions"`
	PurgeActions  int `json:"purge_actions"`
}

// ReconcileOptions controls which repairs are planned and whether they run.
type ReconcileOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// DoPurge plans deletion of records with a non-positive quantity.
	DoPurge bool

	// DoRekey plans moving records whose stored key differs from the derived key.
	DoRekey bool

	// Confirmed indicates the operator confirmed destructive actions.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}
