package service

import (
	"errors"
	"fmt"
)

// NotFoundError reports a missing entity, whether it is the primary target
// of an operation or a cross-reference (a clause's contract).
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
