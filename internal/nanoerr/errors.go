package nanoerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when an input has the wrong size for its target type.
	ErrInvalidLength = errors.New("invalid length")
	// ErrInvalidScalar is returned when bytes are not a canonical reduced scalar.
	ErrInvalidScalar = errors.New("invalid scalar")
	// ErrInvalidPoint is returned when bytes do not decode to a usable curve point.
	ErrInvalidPoint = errors.New("invalid curve point")
	// ErrIncompatibleCamoVersions is returned when a version is not in the counterpart's set.
	ErrIncompatibleCamoVersions = errors.New("incompatible camo versions")
	// ErrInvalidChecksum is returned when an address checksum does not match.
	ErrInvalidChecksum = errors.New("invalid checksum")
	// ErrInvalidEncoding is returned for text that is not valid for its codec.
	ErrInvalidEncoding = errors.New("invalid encoding")
	// ErrEntropy is returned when the secure random source fails. Treat as fatal.
	ErrEntropy = errors.New("secure randomness unavailable")
)

var kinds = []error{
	ErrInvalidLength,
	ErrInvalidScalar,
	ErrInvalidPoint,
	ErrIncompatibleCamoVersions,
	ErrInvalidChecksum,
	ErrInvalidEncoding,
	ErrEntropy,
}

// Error carries the operation that failed alongside its kind.
type Error struct {
	Op     string // e.g. "scalar.FromCanonicalBytes"
	Kind   error  // one of the sentinel errors above
	Detail string // optional, never contains secret material
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Kind }

// New returns an *Error for op and kind.
func New(op string, kind error) error {
	return &Error{Op: op, Kind: kind}
}

// Newf returns an *Error with a formatted detail message.
func Newf(op string, kind error, format string, args ...any) error {
	return &Error{Op: op, Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Length reports a size mismatch.
func Length(op string, want, got int) error {
	return Newf(op, ErrInvalidLength, "want %d bytes, got %d", want, got)
}

// KindOf returns the sentinel kind wrapped by err, or nil if err is not part
// of this family.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
