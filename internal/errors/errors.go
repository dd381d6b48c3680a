package errors

import "errors"

var (
	ErrUnknownHashFunction = errors.New("unknown hash function")
	ErrInvalidBuckets      = errors.New("buckets must be greater than 0")
	ErrInvalidStep         = errors.New("step must be greater than 0")
)
