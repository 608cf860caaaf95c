// Package inventory serves the garment inventory over HTTP.
//
// Routes:
//
//   - GET    /inventory               list, filter by type/fabric, sort by date/type/size
//   - POST   /inventory/import        add stock (merges into the existing line)
//   - POST   /inventory/export        remove stock (deletes the line at zero)
//   - POST   /inventory/adjust        per-row inc, dec or del
//   - DELETE /inventory               clear everything, gated by X-Clear-Pin
//   - GET    /inventory/csv           CSV download
//   - POST   /inventory/csv/publish   upload the CSV to object storage
//   - GET    /inventory/csv/exports   list published CSV files
//   - GET    /catalog                 garment types
//   - GET    /catalog/:type/sizes     sizes offered for a type
//
// Every mutation is broadcast to websocket clients through ws.Hub.
package inventory
