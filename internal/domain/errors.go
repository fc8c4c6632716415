package domain

import "errors"

// ErrInvalidStatus is returned when a status transition names a value outside
// the entity's declared vocabulary.
var ErrInvalidStatus = errors.New("invalid status value")
