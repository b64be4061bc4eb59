package compois

import "errors"

// ErrLengthMismatch is returned by vectorized calls whose inputs differ in length.
var ErrLengthMismatch = errors.New("'mean' and 'nu' must be vectors of same length")
