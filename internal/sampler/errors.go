package sampler

import "errors"

// ErrDomain indicates sampler parameters outside the distribution's domain.
var ErrDomain = errors.New("invalid parameter")
