package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Post errors
	ErrPostNotFound = errors.New("post not found")

	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")

	// Engagement errors
	ErrSignInRequired = errors.New("sign in to interact")
	ErrEmptyQuote     = errors.New("quote text must not be empty")
	ErrEngagementBusy = errors.New("engagement toggle already in flight")

	// Follow/block errors
	ErrSelfFollow = errors.New("cannot follow yourself")
	ErrSelfBlock  = errors.New("cannot block yourself")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidPostID = errors.New("invalid post id")
	ErrInvalidToken  = errors.New("invalid token")
)
