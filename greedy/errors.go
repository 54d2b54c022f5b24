package greedy

import "errors"

// ErrUnreachable is returned when the path stack empties without ever
// reaching a goal board.
var ErrUnreachable = errors.New("greedy: goal unreachable from start")
