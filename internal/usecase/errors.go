package usecase

import "errors"

// Request-local failure taxonomy. Services wrap these with context via
// fmt.Errorf("%w: ..."), handlers map them to HTTP statuses with errors.Is.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("not authorized")
	ErrConflict  = errors.New("already exists")
	ErrNoTables  = errors.New("no tables available")
)
