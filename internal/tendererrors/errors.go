package tendererrors

import "errors"

// Entity lookup errors
var (
	ErrTenderNotFound = errors.New("tender not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrFileNotFound   = errors.New("file not found")
)

// Authorization and input errors
var (
	ErrAccessDenied    = errors.New("access denied")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("already exists")
)

// Collaborator failures
var (
	ErrUpstream = errors.New("tender source unavailable")
	ErrStorage  = errors.New("file storage failure")
)
