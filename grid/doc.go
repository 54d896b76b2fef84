// Package grid implements the pure, UI-free interaction engine for sheetgrid.
//
// Coordinates are 0-based (Col, Row) cell indices. Ranges are inclusive
// rectangles [Min, Max] on both axes and are always stored normalized.
//
// A Grid owns the row store, the selection state machine, the undo history
// and the row windower. Rendering layers read its accessors and subscribe to
// change events; they never mutate the row sequence directly.
package grid
