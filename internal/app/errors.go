package app

import "errors"

var (
	ErrInvalidConfig    = errors.New("app: invalid configuration")
	ErrStoreUnavailable = errors.New("app: session store unavailable")
)
