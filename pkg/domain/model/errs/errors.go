package errs

import (
	"errors"
)

// ErrMissingProperty is returned when a required resource property is absent
// from the CloudFormation event.
var ErrMissingProperty = errors.New("required resource property not found")

// ErrInvalidProperty is returned when a resource property is present but
// cannot be parsed into its expected type.
var ErrInvalidProperty = errors.New("invalid resource property")

// ErrIndexCreation is returned when the remote create-index call or its
// follow-up visibility check fails.
var ErrIndexCreation = errors.New("index creation failed")
