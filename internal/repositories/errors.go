package repositories

import "errors"

// ErrDuplicate is returned when a write violates a unique index. It is the
// authoritative duplicate signal; the services' friendlier pre-checks can be
// raced past by concurrent identical requests, this cannot.
var ErrDuplicate = errors.New("duplicate record")
