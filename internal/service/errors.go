package service

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("authentication required")
	ErrForbidden      = errors.New("not the author")
	ErrFollowSelf     = errors.New("cannot follow self")
	ErrNotFollowing   = errors.New("not following this author")
	ErrUsernameTaken  = errors.New("username already taken")
	ErrBadCredentials = errors.New("invalid username or password")
)
