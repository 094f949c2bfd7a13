package domain

import "errors"

var (
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrPostNotFound   = errors.New("post not found")
	ErrAnimalNotFound = errors.New("animal not found")
	ErrPetNotFound    = errors.New("pet not found")
	ErrNoActiveChat   = errors.New("no active chat")
	ErrEmptyInput     = errors.New("empty input")
)

// ValidationError blocks a request before it reaches the remote gateway and
// is shown inline near the originating control.
type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	return e.Msg
}
