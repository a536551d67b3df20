package service

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// ClientError is a failure caused by the request. Message is safe to return
// to the caller; Kind is ErrNotFound or ErrInvalidInput.
type ClientError struct {
	Kind    error
	Message string
}

func (e *ClientError) Error() string {
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Kind
}

func invalidInput(msg string) error {
	return &ClientError{Kind: ErrInvalidInput, Message: msg}
}

func notFound(msg string) error {
	return &ClientError{Kind: ErrNotFound, Message: msg}
}
