package download

import (
	"errors"
	"fmt"
)

// ErrDownloadInProgress is returned when a download is requested while another one is running
var ErrDownloadInProgress = errors.New("a download is already in progress")

// ValidationError reports a request that cannot be built. It is shown to the
// user and never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Field)
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "missing required field"}
}

func unsupportedValue(field, value string) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf("unsupported value %q", value)}
}

// DownloadFailure wraps any error raised by the external downloader. Network,
// disk and codec failures are not distinguished.
type DownloadFailure struct {
	URL string
	Err error
}

func (e *DownloadFailure) Error() string {
	return fmt.Sprintf("download failed: %v", e.Err)
}

func (e *DownloadFailure) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is or wraps a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDownloadFailure reports whether err is or wraps a *DownloadFailure
func IsDownloadFailure(err error) bool {
	var df *DownloadFailure
	return errors.As(err, &df)
}
