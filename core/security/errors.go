package security

import "errors"

// ErrUnauthorized is the single caller-visible outcome of a failed authorization.
// Denials, transport failures and malformed authority responses all map to it.
var ErrUnauthorized = errors.New("invalid credentials")

// ErrInvalidURL is returned at construction when the authority URL is unusable.
var ErrInvalidURL = errors.New("invalid authorization url")

// ErrInvalidScheme is returned at construction when the credential scheme is unusable.
var ErrInvalidScheme = errors.New("invalid credential scheme")
