package shared

import (
	"errors"
	"fmt"
)

// RateLimitError signals upstream throttling. It is never retried automatically.
type RateLimitError struct {
	Source string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limit exceeded", e.Source)
}

type UserNotFoundError struct {
	Platform Platform
	Identity string
	Detail   string
}

func (e *UserNotFoundError) Error() string {
	msg := fmt.Sprintf("%s user '%s' not found", e.Platform.Title(), e.Identity)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

type AccessForbiddenError struct {
	Platform Platform
	Identity string
	Detail   string
}

func (e *AccessForbiddenError) Error() string {
	msg := fmt.Sprintf("access to %s user '%s' is forbidden", e.Platform.Title(), e.Identity)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func NewRateLimit(source string) error {
	return &RateLimitError{Source: source}
}

func NewUserNotFound(p Platform, identity, detail string) error {
	return &UserNotFoundError{p, identity, detail}
}

func NewAccessForbidden(p Platform, identity, detail string) error {
	return &AccessForbiddenError{p, identity, detail}
}

func IsRateLimit(err error) bool {
	var target *RateLimitError
	return errors.As(err, &target)
}

func IsUserNotFound(err error) bool {
	var target *UserNotFoundError
	return errors.As(err, &target)
}

func IsAccessForbidden(err error) bool {
	var target *AccessForbiddenError
	return errors.As(err, &target)
}

// IsClassified tells whether err is one of the per-target conditions that fetchers pass up to the caller.
func IsClassified(err error) bool {
	return IsRateLimit(err) || IsUserNotFound(err) || IsAccessForbidden(err)
}
