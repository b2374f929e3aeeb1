package faultline

import "errors"

// ErrInvalidArgument is returned when an API is called with an argument it
// cannot use. It signals a programming error at setup time.
var ErrInvalidArgument = errors.New("invalid argument")
