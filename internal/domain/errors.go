package domain

import "errors"

var (
	// ErrInvalidArguments reports missing positional arguments
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrMalformedInput reports an input file that does not decode to the expected structure
	ErrMalformedInput = errors.New("malformed input")
	// ErrInvalidThreshold reports a threshold that is not a finite number in [0,1]
	ErrInvalidThreshold = errors.New("invalid threshold")
	// ErrIO reports a failure reading an input or writing the output
	ErrIO = errors.New("i/o failure")
)
