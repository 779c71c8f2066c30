package movieclip

import "errors"

// ErrInvalidArgument reports a malformed argument to a timeline operation.
var ErrInvalidArgument = errors.New("invalid argument")
