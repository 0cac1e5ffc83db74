package core

import (
	"errors"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrPlatformStartup = errors.New("platform startup failed")
	ErrUnknown         = errors.New("unknown")
)
