// Package integrity checks that the stored inventory still obeys its rules.
//
// Unlike the inventory package, which only ever writes valid records, this
// package looks at what is actually in the store. Records may have been
// written by older clients or edited by hand.
//
// # Checks Provided
//
//   - key_mismatch: the stored key differs from the key derived from the record's attributes.
//   - non_positive_qty: the quantity is zero or negative.
//   - invalid_size: the size is not offered for the garment type.
//   - Schema: for the sql backend, columns missing from inventory_items.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs the scan (supports ?purge=true&rekey=true to plan repairs).
//   - POST /integrity/repair : Executes the planned repairs (supports ?dry_run=true).
package integrity
