package service

import "errors"

// Validation failures are terminal for the attempt and happen before any
// network call. Everything else surfaces as a remote failure with the
// backend's message.
var (
	// ErrBlankFileLink indicates an assignment link field was left blank.
	ErrBlankFileLink = errors.New("every file link must be filled in")
	// ErrNoFilesSelected indicates a classwork submission carried zero files.
	ErrNoFilesSelected = errors.New("at least one PDF file must be selected")
	// ErrNotPDF indicates a selected file is not a PDF.
	ErrNotPDF = errors.New("only PDF files are allowed")
	// ErrNotImage indicates a gallery upload is not an image.
	ErrNotImage = errors.New("only image files are allowed")
	// ErrFileTooLarge indicates the payload exceeded the configured limit.
	ErrFileTooLarge = errors.New("file exceeds maximum allowed size")
	// ErrInvalidDeadline indicates the deadline could not be parsed.
	ErrInvalidDeadline = errors.New("invalid deadline")
	// ErrPasswordMismatch indicates the submitted admin password was wrong.
	ErrPasswordMismatch = errors.New("password mismatch")
	// ErrInvalidToken indicates the presented bearer token could not be verified.
	ErrInvalidToken = errors.New("invalid token")
	// ErrSessionRevoked indicates the token's session was signed out.
	ErrSessionRevoked = errors.New("session is no longer active")
)

// IsValidationError reports whether the error is a local pre-network failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrBlankFileLink) ||
		errors.Is(err, ErrNoFilesSelected) ||
		errors.Is(err, ErrNotPDF) ||
		errors.Is(err, ErrNotImage) ||
		errors.Is(err, ErrFileTooLarge) ||
		errors.Is(err, ErrInvalidDeadline)
}
