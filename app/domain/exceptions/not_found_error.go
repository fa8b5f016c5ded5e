package exceptions

import (
	"errors"
	"fmt"
)

// NotFoundError signals that an id-keyed lookup found nothing. It is an
// expected, inspectable failure, distinct from validation errors and from
// infrastructure faults.
type NotFoundError struct {
	AggregateName string
	ID            string
}

func NewNotFoundError(aggregateName, id string) *NotFoundError {
	return &NotFoundError{AggregateName: aggregateName, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s was not found", e.AggregateName, e.ID)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
