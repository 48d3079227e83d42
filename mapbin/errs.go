package mapbin

import "errors"

var (
	ErrMissingData = errors.New("map data truncated")
	ErrBadName     = errors.New("bad map entry name")
)
