package go7x3

import "errors"

// Errors
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrMalformedInput   = errors.New("malformed input")
	ErrBadCycleNotation = errors.New("bad cycle notation")
	ErrViolatesAxioms   = errors.New("structure is not a valid Fano plane")
	ErrNilStructure     = errors.New("nil structure")
	ErrBadCatalogParam  = errors.New("bad catalog param")
	ErrCatalogVersion   = errors.New("catalog version is incompatible")
	ErrCatalogOrigin    = errors.New("catalog origin does not match")
	ErrReadOnly         = errors.New("catalog is in read-only mode")
	ErrBadKind          = errors.New("bad output kind")
)
