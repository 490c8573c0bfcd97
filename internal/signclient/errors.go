package signclient

import "errors"

const (
	MessageGenerateFailed = "Failed to generate signing link"
	MessageSaveFailed     = "Failed to save to files"
	MessageLookupFailed   = "Failed to load recipients"
)

var (
	ErrRecipientIDType   = errors.New("recipient id does not match recipient type")
	ErrRecipientType     = errors.New("recipient type must be staff or client")
	ErrMissingToken      = errors.New("token is required")
	ErrEmptyDocument     = errors.New("document is empty")
	ErrMalformedResponse = errors.New("response is missing the link field")
)

// Error : failed request. Message is the server-provided message when one was
// returned, otherwise a generic text for the operation.
type Error struct {
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
