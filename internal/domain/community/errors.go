package community

import "errors"

var (
	ErrThreadNotFound   = errors.New("thread not found")
	ErrReplyNotFound    = errors.New("reply not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrNotAllowed       = errors.New("not allowed")
)
