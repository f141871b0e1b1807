// Package errors provides error handling for the generator.
//
// It re-exports github.com/cockroachdb/errors so every package wraps and
// inspects errors the same way:
//
//	if err := fetch(ctx); err != nil {
//	    return errors.Wrap(err, "failed to fetch resource listing")
//	}
//
//	if errors.Is(err, errors.ErrUnresolvableImport) {
//	    // tree was built without an import-capable root
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
	Mark          = crdb.Mark
)

// Sentinel errors. Match with errors.Is; wrap with errors.Wrap to add context.
var (
	// ErrUnresolvableImport indicates no node up the tree can hold imports
	ErrUnresolvableImport = New("unresolvable import")

	// ErrUnsupportedSwagger indicates a description document outside the supported version range
	ErrUnsupportedSwagger = New("unsupported swagger version")

	// ErrFetchFailed indicates a description document could not be retrieved
	ErrFetchFailed = New("fetch failed")

	// ErrInvalidConfig indicates the configuration failed validation
	ErrInvalidConfig = New("invalid configuration")

	// ErrOutOfDate indicates generated output differs from the file on disk
	ErrOutOfDate = New("generated output is out of date")
)

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidConfig)
}

// WrapFetchFailed marks err as a fetch failure while keeping its message
func WrapFetchFailed(err error, context string) error {
	return Mark(Wrap(err, context), ErrFetchFailed)
}
