package record

import "errors"

// Decoding errors
var (
	// ErrType means a record field is missing or holds a value of the wrong type.
	ErrType = errors.New("malformed record")
	// ErrShape means a structured record does not carry exactly the expected fields.
	ErrShape = errors.New("unexpected record shape")
	// ErrUnknownType means the `type` discriminator names no registered kind.
	ErrUnknownType = errors.New("unknown record type")
	// ErrAlreadyRegistered means a discriminator was registered twice.
	ErrAlreadyRegistered = errors.New("record type already registered")
	// ErrUnsupportedFormat means a snapshot format other than JSON or YAML was requested.
	ErrUnsupportedFormat = errors.New("unsupported snapshot format")
)
