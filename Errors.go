package Go_Structs

import "github.com/pkg/errors"

// Coarse failure kinds shared by every structure in this module. Functions wrap
// them with the offending arguments; test with errors.Is.
var (
	// ErrOutOfRange is returned when an index or element id is outside its domain.
	ErrOutOfRange = errors.New("index out of range")
	// ErrDuplicate is returned when an insertion target is already present.
	ErrDuplicate = errors.New("duplicate element")
	// ErrNotFound is returned when a removal target or queried key is absent.
	ErrNotFound = errors.New("element not found")
	// ErrInvalidArgument is returned when an input violates a precondition.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmpty is returned when a value is queried from an empty structure.
	ErrEmpty = errors.New("empty structure")
)

// OutOfRange wraps ErrOutOfRange with the index and the half open domain [lo, hi).
func OutOfRange(i, lo, hi int) error {
	return errors.Wrapf(ErrOutOfRange, "%d not in [%d, %d)", i, lo, hi)
}

// InvalidArgument wraps ErrInvalidArgument with a formatted reason.
func InvalidArgument(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}
