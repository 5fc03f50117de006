// Package source loads structure records into dataset entries.
//
// Records follow the JARVIS layout: jid, crys and an atoms block with
// lattice_mat (rows are lattice vectors), coords, elements and a cartesian
// flag. Fractional coordinates are converted with the lattice; element
// symbols are resolved through a species table.
//
// Backends:
//
//   - LoadFile reads a JSON or YAML list of records.
//   - SQLite keeps records in a "structures" table (modernc.org/sqlite, no cgo).
//   - Load picks the backend from the file extension.
package source
