package domain

import "errors"

// Sentinel errors form the taxonomy callers branch on with errors.Is.
//
// ErrInvalidCredentials deliberately covers both "no such account" and "wrong
// password": sign-in must not reveal which half failed.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrPersistence        = errors.New("storage unavailable")
	ErrValidation         = errors.New("validation failed")

	// ErrUserNotFound is internal to the repository layer; the identity
	// service folds it into ErrInvalidCredentials before it reaches a caller.
	ErrUserNotFound = errors.New("user not found")

	ErrDonationNotFound  = errors.New("donation not found")
	ErrDuplicateDonation = errors.New("donation already submitted")
)
