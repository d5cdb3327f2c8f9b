package client

import "errors"

// ErrUnavailable signals that the server could not be reached.
var ErrUnavailable = errors.New("server unavailable")

// ErrRemote carries a failure reported by the server inside a response
// envelope. Use errors.Is to detect it; the message is the server's own.
var ErrRemote = errors.New("server error")
