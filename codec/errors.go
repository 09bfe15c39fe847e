package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrHeader is returned when a binary payload does not start with a
	// valid geomgo header (wrong magic or unsupported format version).
	ErrHeader = errors.New("codec: invalid binary header")

	// ErrTruncated is returned when a payload is shorter than its header
	// declares.
	ErrTruncated = errors.New("codec: truncated payload")

	// ErrUnknownKind is returned when a binary payload carries a kind tag
	// this version does not know.
	ErrUnknownKind = errors.New("codec: unknown binary kind")

	// ErrUnknownCompression is returned when a compressed frame carries a
	// compression tag this version does not know.
	ErrUnknownCompression = errors.New("codec: unknown compression type")
)

// ErrScalarWidthMismatch indicates a binary payload encoded at the other
// scalar precision. Payloads never convert silently between precisions.
type ErrScalarWidthMismatch struct {
	Payload int // scalar width of the payload, in bits
	Build   int // scalar width of this build, in bits
}

func (e *ErrScalarWidthMismatch) Error() string {
	return fmt.Sprintf("codec: payload encoded with %d-bit scalars, build uses %d-bit", e.Payload, e.Build)
}

// ErrUnsupportedType indicates a value (or decode target) that is not one
// of the geomgo value types or a slice/pointer of them.
type ErrUnsupportedType struct {
	Value any
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("codec: unsupported type %T", e.Value)
}

// ErrKindMismatch indicates a binary payload whose kind tag does not
// match the decode target.
type ErrKindMismatch struct {
	Kind   uint8 // kind tag found in the payload (without the slice bit)
	Target any   // decode target that was passed in
}

func (e *ErrKindMismatch) Error() string {
	return fmt.Sprintf("codec: payload kind %d does not decode into %T", e.Kind, e.Target)
}
