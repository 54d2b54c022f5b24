package automatonfile

import "errors"

// ErrTruncated is returned when the stream ends before a complete
// header or node table has been read.
var ErrTruncated = errors.New("automatonfile: truncated stream")

// ErrCorrupt is returned when a decoded Kind byte is not one of the
// three declared transition kinds.
var ErrCorrupt = errors.New("automatonfile: corrupt node table")
