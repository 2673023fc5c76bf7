package repositories

import "errors"

// ErrNotFound covers lookup misses and rows filtered out by an
// availability or ownership condition.
var ErrNotFound = errors.New("record not found")
