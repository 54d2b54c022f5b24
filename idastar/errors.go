package idastar

import "errors"

// ErrUnreachable is returned when a DFS pass observes no finite
// f-cost beyond the current threshold — next_τ == 0 — before the
// goal was found.
var ErrUnreachable = errors.New("idastar: goal unreachable from start")
