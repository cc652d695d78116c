package domain

import (
	"errors"
	"fmt"
)

// ErrUserDoesNotExist is returned when an update or delete targets an
// unknown username.
var ErrUserDoesNotExist = errors.New("user does not exist")

// UsernameAlreadyExistsError is returned when a create collides with an
// existing username.
type UsernameAlreadyExistsError struct {
	Username string
}

func (e *UsernameAlreadyExistsError) Error() string {
	return fmt.Sprintf("The username '%s' is already in use.", e.Username)
}

// IsUsernameTaken reports whether err carries a UsernameAlreadyExistsError.
func IsUsernameTaken(err error) bool {
	var target *UsernameAlreadyExistsError
	return errors.As(err, &target)
}
