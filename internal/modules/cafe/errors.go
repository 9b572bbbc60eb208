package cafe

import "errors"

var (
	ErrCafeNotFound   = errors.New("cafe not found")
	ErrNoCafes        = errors.New("no cafes stored")
	ErrDuplicateCafe  = errors.New("cafe already exists")
	ErrMissingField   = errors.New("required field missing")
	ErrInvalidBoolean = errors.New("invalid boolean value")
)
