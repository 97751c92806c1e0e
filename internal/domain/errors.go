package domain

import "errors"

// Sentinel errors for the identity and catalog flows. Services return these;
// the HTTP boundary maps them to status codes in one place.
var (
	// ErrIdentityExists signals a registration attempt for an email that is
	// already taken.
	ErrIdentityExists = errors.New("identity already exists")

	// ErrIdentityNotFound signals a login attempt for an unknown email.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrInvalidCredentials signals a password that does not match the stored
	// hash.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateIdentity is the store-level uniqueness violation. A
	// registration that loses the insert race surfaces this, and the service
	// reports it as ErrIdentityExists.
	ErrDuplicateIdentity = errors.New("duplicate identity")

	// ErrBookNotFound signals a lookup, update or delete for an absent book.
	ErrBookNotFound = errors.New("book not found")
)
