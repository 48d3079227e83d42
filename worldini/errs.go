package worldini

import "errors"

var (
	ErrBadEncoding = errors.New("world ini is not valid Windows-1252")
	ErrUnencodable = errors.New("text not representable in Windows-1252")
)
