package permkit

import "errors"

var (
	// ErrBase is returned by Parse for a base other than 10 or 16.
	ErrBase = errors.New("permkit: unsupported base")
	// ErrSyntax is returned by Parse for text that is not an unsigned
	// integer in the requested base.
	ErrSyntax = errors.New("permkit: malformed permission text")
	// ErrNegative is returned by Parse for text denoting a negative value.
	ErrNegative = errors.New("permkit: negative permission value")
)
