// Package query provides the read side of the inventory: filtering, ordering and
// CSV export over the records returned by the engine.
//
// Filter and sort settings are passed explicitly through Options; the package
// keeps no state between calls.
//
// # Sort Criteria
//
//   - date: newest AddedAt first; records without a timestamp sort last.
//   - type: ascending by garment type.
//   - size: numeric sizes first in ascending value, then the remaining tokens
//     in lexicographic order ("2" < "10" < "M" < "XL").
//
// # CSV
//
// WriteCSV emits the header type,code,color,size,fabric,qty,notes,addedAt
// followed by one fully quoted row per record.
package query
