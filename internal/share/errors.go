package share

import "errors"

// ErrMissingParam is returned when a link lacks the heading or body parameter
var ErrMissingParam = errors.New("share link is missing heading or body")
