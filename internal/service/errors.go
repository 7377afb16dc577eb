package service

import "errors"

// The failure taxonomy every operation reports through. Guard clauses return
// these (possibly wrapped with fmt.Errorf and %w) instead of mixing thrown
// and returned failures; resolvers surface the message as the GraphQL error.
var (
	ErrNotAuthenticated = errors.New("you must be signed in")
	ErrNotAuthorized    = errors.New("you do not have sufficient permissions")
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("invalid input")
	ErrPaymentFailed    = errors.New("payment failed")
)
