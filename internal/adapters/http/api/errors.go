package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrMissingFile   = errors.New("no file uploaded")
	ErrMissingTarget = errors.New("missing 'id' or 'all' parameter")
)
