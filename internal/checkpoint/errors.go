package checkpoint

import "errors"

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrTooManyEntries     = errors.New("too many tangent entries in file")
	ErrInvalidEntryName   = errors.New("invalid entry name")
	ErrNegativeOffset     = errors.New("negative offset or size")
	ErrOutOfBounds        = errors.New("entry extends beyond payload")
	ErrOffsetOverlap      = errors.New("entry offsets overlap")
	ErrSizeMismatch       = errors.New("entry size does not match its shape")
)
