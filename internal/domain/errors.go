package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrEmptyLinkPool  = errors.New("subscription link pool is empty")
	ErrDigestTooLong  = errors.New("digest block exceeds message length")
	ErrPostTooLong    = errors.New("post exceeds character limit")
	ErrUnknownTitle   = errors.New("unknown digest title")
)

// PostTooLongError reports a social post that does not fit its cap.
type PostTooLongError struct {
	Post   string
	Length int
	Limit  int
}

func (e *PostTooLongError) Error() string {
	return fmt.Sprintf("post has %d characters, limit is %d:\n%s", e.Length, e.Limit, e.Post)
}

func (e *PostTooLongError) Unwrap() error {
	return ErrPostTooLong
}
