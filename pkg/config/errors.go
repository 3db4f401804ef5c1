package config

import "errors"

var (
	// ErrParsingConfig wraps failures from parsing the environment into the
	// target struct.
	ErrParsingConfig = errors.New("config: failed to parse environment")

	// ErrNilPointer is returned when Load receives a nil target.
	ErrNilPointer = errors.New("config: nil pointer provided")
)
