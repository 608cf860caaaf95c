// Package reconcile implements the inventory reconciliation logic shared by every
// storage backend: canonical key derivation, merge-on-add, subtract-on-remove and
// the invariant scan used by the integrity feature.
//
// # Identity
//
// A record is identified by its key, a pure function of the normalized
// (type, code, color, size, fabric) tuple joined with normalize.Separator.
// Two items that normalize to the same tuple always land on the same record;
// there is no secondary deduplication pass.
//
// # Engine
//
// The Engine applies write requests against a Store:
//
//   - MergeAndAdd creates a record or increments an existing one.
//   - Subtract decrements a record and deletes it when the quantity reaches zero.
//   - ClearAll deletes every known key and is idempotent.
//
// Validation always runs before the first store call, so a rejected request never
// mutates storage. Store failures are wrapped in *StoreError and returned as is;
// the engine never retries.
//
// # Concurrency
//
// The Store contract offers no compare-and-swap, so the read-then-write sequence of
// each operation runs inside a per-key mutual-exclusion section. This serializes
// writers inside one process; cross-process races are out of scope.
//
// # Listing
//
// List serves GetAll through a snapshot cache with stampede protection
// (singleflight). Every successful write invalidates the snapshot.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(store, logger, 0)
//
//	rec, err := engine.MergeAndAdd(ctx, reconcile.Item{Type: "Shirt", Code: "ab1", Size: "m", Qty: 5})
//	if reconcile.IsValidation(err) {
//	    // reject the request
//	}
//
//	_, err = engine.Subtract(ctx, reconcile.Item{Type: "Shirt", Code: "AB1", Size: "M", Qty: 6})
//	var short *reconcile.InsufficientQuantityError
//	if errors.As(err, &short) {
//	    fmt.Println("available:", short.Available)
//	}
package reconcile
