package domain

import "errors"

var (
	// ErrNotFound indicates the target post does not exist
	ErrNotFound = errors.New("post not found")

	// ErrPermissionDenied indicates the caller does not own the target post
	ErrPermissionDenied = errors.New("permission denied")
)
