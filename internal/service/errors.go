package service

import "errors"

// ErrInvalidArgument marks input that is malformed or semantically
// inconsistent: out-of-range pagination, identical conversation endpoints, a
// line speaker that is not a conversation endpoint. Handlers map it to a
// 400/422-class response. Not-found conditions reuse repository.ErrNotFound.
var ErrInvalidArgument = errors.New("invalid argument")
