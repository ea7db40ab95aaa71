package services

import "fmt"

// ErrorKind is a machine-readable reason attached to every pipeline error.
// Handlers map kinds to HTTP status codes; clients get the kind in the
// error body alongside a human-readable message.
type ErrorKind string

const (
	// Text extraction failures.
	KindUnsupportedFormat ErrorKind = "UNSUPPORTED_FORMAT"
	KindCorruptDocument   ErrorKind = "CORRUPT_DOCUMENT"
	KindEmptyDocument     ErrorKind = "EMPTY_DOCUMENT"

	// Assisted extraction failures.
	KindEmptyResponse       ErrorKind = "EMPTY_RESPONSE"
	KindMalformedJSON       ErrorKind = "MALFORMED_JSON"
	KindUpstreamUnavailable ErrorKind = "UPSTREAM_UNAVAILABLE"

	// Upload validation failures, rejected before any extraction work.
	KindNoFile          ErrorKind = "NO_FILE"
	KindFileTooLarge    ErrorKind = "FILE_TOO_LARGE"
	KindUnsupportedType ErrorKind = "UNSUPPORTED_TYPE"
)

// ExtractionError reports a text-extraction failure.
type ExtractionError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

func NewUnsupportedFormatError(details string) *ExtractionError {
	return &ExtractionError{Kind: KindUnsupportedFormat, Message: "unsupported document format: " + details}
}

func NewCorruptDocumentError(err error) *ExtractionError {
	return &ExtractionError{Kind: KindCorruptDocument, Message: "failed to decode document", Err: err}
}

func NewEmptyDocumentError() *ExtractionError {
	return &ExtractionError{Kind: KindEmptyDocument, Message: "no text found in document"}
}

// AssistError reports an assisted-mode (language model) failure.
type AssistError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AssistError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AssistError) Unwrap() error { return e.Err }

func NewEmptyResponseError() *AssistError {
	return &AssistError{Kind: KindEmptyResponse, Message: "no response from language model"}
}

func NewMalformedJSONError(err error) *AssistError {
	return &AssistError{Kind: KindMalformedJSON, Message: "language model returned malformed JSON", Err: err}
}

func NewUpstreamUnavailableError(err error) *AssistError {
	return &AssistError{Kind: KindUpstreamUnavailable, Message: "language model request failed", Err: err}
}

// ValidationError reports an upload rejected before the pipeline runs.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewNoFileError() *ValidationError {
	return &ValidationError{Kind: KindNoFile, Message: "no file uploaded"}
}

func NewFileTooLargeError(maxBytes int64) *ValidationError {
	return &ValidationError{Kind: KindFileTooLarge, Message: fmt.Sprintf("file too large, max size is %d bytes", maxBytes)}
}

func NewUnsupportedTypeError(details string) *ValidationError {
	return &ValidationError{Kind: KindUnsupportedType, Message: "only PDF, DOC, and DOCX files are allowed: " + details}
}
