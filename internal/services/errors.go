package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrCommentTooLong = errors.New("comment too long")
	ErrRateLimited    = errors.New("rate limited")
	ErrCommentFailed  = errors.New("comment update failed")
)

// FetchError is what every failed read turns into. Missing, forbidden and
// unreachable records all look the same to callers; the cause is kept for
// logs only and left out of Error().
type FetchError struct {
	Resource string
	ID       string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrNotFound
}
