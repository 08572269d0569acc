package marketerrors

import "errors"

// Repository-level errors
var (
	ErrJobNotFound     = errors.New("job not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrNoBids          = errors.New("no bids found for job")
	ErrWorkNotFound    = errors.New("ongoing work not found")
	ErrWorkExists      = errors.New("ongoing work already exists for bid")
	ErrVersionConflict = errors.New("bid was modified concurrently")
)

// Bid validation errors. The first four mirror the bidding rule reasons so
// callers can surface each violation distinctly.
var (
	ErrInvalidBid            = errors.New("invalid bid")
	ErrBidNotPositive        = errors.New("bid price must be positive")
	ErrInsufficientDecrement = errors.New("bid revision below minimum decrement")
	ErrMustBeatLowest        = errors.New("bid must undercut the lowest bid by the minimum decrement")
	ErrBelowMinimumBudget    = errors.New("bid price below project minimum budget")
)

// Lifecycle / workflow errors
var (
	ErrInvalidJob          = errors.New("invalid job")
	ErrUpdateLimitExceeded = errors.New("bid update limit exceeded")
	ErrNotBidOwner         = errors.New("bid belongs to another contractor")
	ErrNotJobOwner         = errors.New("job belongs to another client")
	ErrBidClosed           = errors.New("bid is no longer open")
	ErrTermsNotAccepted    = errors.New("agreement terms not accepted")
	ErrWorkSetupPending    = errors.New("bid accepted but work record setup is pending")
)
