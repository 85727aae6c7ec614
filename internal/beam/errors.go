package beam

import (
	"errors"
	"fmt"
)

// ErrEmptyBeam is returned when a node is removed from a beam without nodes.
var ErrEmptyBeam = errors.New("beam has no nodes")

// ValidationError represents an invalid beam, node or support definition
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err is (or wraps) a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
