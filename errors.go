package rangeallocator

import "errors"

var (
	ErrInvalidBase              = errors.New("rangeallocator: base must be non-zero and aligned to granularity")
	ErrInvalidLength            = errors.New("rangeallocator: length must be non-zero")
	ErrInvalidGranularity       = errors.New("rangeallocator: granularity must be non-zero")
	ErrGranularityExceedsLength = errors.New("rangeallocator: granularity exceeds length")
	ErrNodeStorageExhausted     = errors.New("rangeallocator: node storage exhausted")
)
