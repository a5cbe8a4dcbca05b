package useragent

import "errors"

var (
	ErrEmptyUserAgent = errors.New("empty user agent string")
	ErrNoUserAgent    = errors.New("user agent not found in context")
)
