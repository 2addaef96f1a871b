package availability

import "errors"

// ErrInvalidDate is returned when the requested date is not a valid
// "YYYY-MM-DD" calendar date. The HTTP layer maps it to a client error;
// every other failure from Generate is an upstream lookup problem and is
// surfaced as a single opaque server error.
var ErrInvalidDate = errors.New("invalid date: want YYYY-MM-DD")
