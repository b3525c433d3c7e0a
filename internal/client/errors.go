package client

import "errors"

var (
	// ErrNoSession is returned by operations that need an active session
	// (e.g. Logout) when none is installed.
	ErrNoSession = errors.New("no active session")
)
