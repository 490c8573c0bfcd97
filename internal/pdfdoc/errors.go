package pdfdoc

import (
	"errors"
	"fmt"
	"strings"
)

var ErrLoadTimeout = errors.New("PDF loading timed out")

// PageRenderError : a single page could not be rendered
type PageRenderError struct {
	Page int
	Err  error
}

func (e *PageRenderError) Error() string {
	return fmt.Sprintf("failed to render page %d: %v", e.Page, e.Err)
}

func (e *PageRenderError) Unwrap() error {
	return e.Err
}

const (
	MessageWorker    = "Failed to load PDF worker. Please refresh the page and try again."
	MessagePassword  = "This PDF is password-protected. Please upload a PDF without a password."
	MessageInvalid   = "Invalid or corrupted PDF file. Please try a different file."
	MessageTimeout   = "PDF loading timed out. Please try again."
	messagePage      = "Failed to render page %d. The file may be damaged."
	messageGeneric   = "Failed to load PDF: %s"
	messageNoDetails = "unknown error"
)

// ClassifyLoadError turns a load failure into a message suitable for the operator
func ClassifyLoadError(err error) string {
	if err == nil {
		return fmt.Sprintf(messageGeneric, messageNoDetails)
	}

	if errors.Is(err, ErrLoadTimeout) {
		return MessageTimeout
	}

	var pageErr *PageRenderError
	if errors.As(err, &pageErr) {
		return fmt.Sprintf(messagePage, pageErr.Page)
	}

	raw := err.Error()
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "worker"):
		return MessageWorker
	case strings.Contains(lower, "password"), strings.Contains(lower, "encrypt"):
		return MessagePassword
	case strings.Contains(lower, "invalid"), strings.Contains(lower, "corrupt"), strings.Contains(lower, "malformed"):
		return MessageInvalid
	default:
		return fmt.Sprintf(messageGeneric, raw)
	}
}
