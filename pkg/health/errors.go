package health

import "errors"

// ErrCheckTimeout is reported when a check does not finish before its deadline.
var ErrCheckTimeout = errors.New("health: check timeout")
