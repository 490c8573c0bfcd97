package service

import "errors"

var (
	ErrEmptyDocument     = errors.New("pdf file is required")
	ErrDocumentTooLarge  = errors.New("pdf file exceeds the upload limit")
	ErrInvalidDocument   = errors.New("invalid PDF")
	ErrNoFields          = errors.New("at least one field is required")
	ErrNoSignatureField  = errors.New("at least one signature field is required")
	ErrInvalidFields     = errors.New("invalid fields")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrSessionNotFound   = errors.New("signing session not found")
	ErrRecipientNotFound = errors.New("recipient not found")
)
