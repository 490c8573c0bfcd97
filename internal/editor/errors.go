package editor

import "errors"

// Local validation failures. They never reach the network.
var (
	ErrNoSignatureField = errors.New("Please add at least one signature field before generating a link.")
	ErrNoDocument       = errors.New("Please upload a PDF document first.")
	ErrNoLink           = errors.New("Generate a signing link before saving to files.")
	ErrRequestInFlight  = errors.New("A request is already in progress.")
	ErrFieldsChanged    = errors.New("Fields changed while the link was being generated. Please generate a new link.")
)
