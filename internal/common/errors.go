package common

import "errors"

// Callers match these values with errors.Is.
var (
	// Client-side validation errors. None of these involve a network call.
	ErrUnsupportedFileType = errors.New("only .doc or .docx files are allowed")
	ErrNoFileSelected      = errors.New("no file selected")
	ErrFileTooLarge        = errors.New("file exceeds the 10 MiB limit")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch    = errors.New("passwords do not match")

	// Auth errors.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUnauthorized       = errors.New("unauthorized")

	// Lifecycle errors.
	ErrRequestInFlight = errors.New("a formatting request is already in flight")
	ErrNoResult        = errors.New("no formatting result available")
	ErrClosed          = errors.New("orchestrator is closed")
)
