package match

import "errors"

// ErrTooManyIterations is returned when a single inner-match attempt
// exceeds its iteration budget. It protects against pathologically
// backtracking patterns without resorting to a panic — the engine stays
// total over well-typed inputs.
var ErrTooManyIterations = errors.New("corebt: match exceeded iteration budget")
