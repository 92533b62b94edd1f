package decode

import "errors"

// Sentinel kinds for decode errors.
var (
	// ErrUnsupportedFormat marks a recognized but unsupported spreadsheet
	// format (legacy .xls).
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrDecode marks corrupt or unreadable input.
	ErrDecode = errors.New("decode failed")
)
