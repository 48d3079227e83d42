package knyttbin

import "errors"

var (
	// ErrBadSignature indicates an entry header that does not start with "NF".
	ErrBadSignature = errors.New("knyttbin: bad entry signature")
	// ErrBadPath indicates an entry path that is empty, absolute, escapes the
	// output directory, exceeds the configured length limit, or cannot be
	// represented in Windows-1252.
	ErrBadPath = errors.New("knyttbin: bad entry path")
	// ErrOversizedFile indicates an entry larger than the configured limit.
	ErrOversizedFile = errors.New("knyttbin: oversized file")
	// ErrMissingData indicates an archive that ends before an entry is complete.
	ErrMissingData = errors.New("knyttbin: missing data")
	// ErrOutputExists indicates that the output path exists and is not an
	// empty directory, and overwriting was not allowed.
	ErrOutputExists = errors.New("knyttbin: output path exists")
)
