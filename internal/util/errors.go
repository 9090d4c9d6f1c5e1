package util

import "errors"

var (
	ErrInvalidBody        = errors.New("malformed request body")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidReaction    = errors.New("unsupported reaction type")
	ErrEmptyContent       = errors.New("content is empty")
	ErrContentTooLong     = errors.New("content exceeds length limit")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrSelfRequest        = errors.New("cannot friend yourself")
	ErrSelfMessage        = errors.New("cannot message yourself")
	ErrCannotRepostOwn    = errors.New("cannot repost own entry")
	ErrDuplicateRepost    = errors.New("identity already reposted")
	ErrRequestClosed      = errors.New("friend request already resolved")
	ErrInvalidAction      = errors.New("unknown respond action")
)
