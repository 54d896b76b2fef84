// Package sheet is a Bubble Tea component that binds a grid.Grid to a
// terminal: it routes keys and pointer events to grid commands and renders the
// visible rows.
//
// The component owns no data; every read goes through the grid's accessors and
// every change through its commands, so hosts may keep a reference to the grid
// (Model.Grid) and mutate it directly.
package sheet
