package grid

import "errors"

// Errors returned by grid operations. None of them leave the grid in an
// unusable state.
var (
	// ErrNotEditable is returned when writing to a read-only column.
	ErrNotEditable = errors.New("cell is not editable")

	// ErrOutOfBounds is returned when an address does not resolve to a cell.
	ErrOutOfBounds = errors.New("cell address out of bounds")

	// ErrDuplicateColumn is returned when two columns share a key.
	ErrDuplicateColumn = errors.New("duplicate column key")

	// ErrUnknownColumn is returned when a column key does not resolve.
	ErrUnknownColumn = errors.New("unknown column key")

	// ErrParse is wrapped by cell types when text cannot be parsed.
	ErrParse = errors.New("cannot parse cell value")

	// ErrNotEditing is returned when committing without an open editor.
	ErrNotEditing = errors.New("no cell is being edited")
)
