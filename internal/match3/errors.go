package match3

import "errors"

var (
	// ErrOutOfRange indicates a grid access outside [0,width)x[0,height).
	ErrOutOfRange = errors.New("match3: coordinate out of range")
	// ErrInvalidDimensions indicates a non-positive width, height or cell size.
	ErrInvalidDimensions = errors.New("match3: grid dimensions and cell size must be positive")
	// ErrMisconfiguredTokenSet indicates an empty token type set.
	ErrMisconfiguredTokenSet = errors.New("match3: token set must contain at least one type")
	// ErrEmptyCell indicates an operation that requires an occupied cell hit an empty one.
	ErrEmptyCell = errors.New("match3: cell is empty")
	// ErrTurnInProgress indicates a turn was requested while another is resolving.
	ErrTurnInProgress = errors.New("match3: turn already resolving")
	// ErrLayoutMismatch indicates Load was given rows that do not fit the board.
	ErrLayoutMismatch = errors.New("match3: layout does not match board dimensions")
)
