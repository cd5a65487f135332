package sitegen

import "errors"

// Sentinel errors for site builds.
var (
	ErrNilConfig      = errors.New("config cannot be nil")
	ErrLayoutParse    = errors.New("failed to parse layout template")
	ErrLayoutExecute  = errors.New("failed to execute layout template")
	ErrListingParse   = errors.New("failed to parse listing template")
	ErrListingExecute = errors.New("failed to execute listing template")
	ErrPageRead       = errors.New("failed to read page source")
	ErrPageWrite      = errors.New("failed to write rendered page")
	ErrBuildFailed    = errors.New("build completed with page errors")
)
