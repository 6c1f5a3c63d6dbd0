package files

import (
	"errors"
)

// ErrorKind classifies a failed store or transfer operation
type ErrorKind string

const (
	KindNotFound         ErrorKind = "NOT_FOUND"         // Requested name absent
	KindAlreadyExists    ErrorKind = "ALREADY_EXISTS"    // Upload name collision
	KindTooLarge         ErrorKind = "TOO_LARGE"         // Upload exceeds configured maximum
	KindInvalidName      ErrorKind = "INVALID_NAME"      // Name has no usable basename
	KindInvalidFormat    ErrorKind = "INVALID_FORMAT"    // Malformed wire payload
	KindStoreUnavailable ErrorKind = "STORE_UNAVAILABLE" // Filesystem inaccessible or write failed
	KindTransport        ErrorKind = "TRANSPORT_ERROR"   // Network failure or non-success status
)

var (
	ErrNotFound         = errors.New("the file does not exist")
	ErrAlreadyExists    = errors.New("the file already exists")
	ErrTooLarge         = errors.New("the file is too large")
	ErrInvalidName      = errors.New("invalid file name")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrStoreUnavailable = errors.New("storage unavailable")
	ErrTransport        = errors.New("transport error")
)

var kindSentinels = map[ErrorKind]error{
	KindNotFound:         ErrNotFound,
	KindAlreadyExists:    ErrAlreadyExists,
	KindTooLarge:         ErrTooLarge,
	KindInvalidName:      ErrInvalidName,
	KindInvalidFormat:    ErrInvalidFormat,
	KindStoreUnavailable: ErrStoreUnavailable,
	KindTransport:        ErrTransport,
}

// IsValid checks if the kind is part of the taxonomy
func (k ErrorKind) IsValid() bool {
	_, ok := kindSentinels[k]
	return ok
}

// Sentinel returns the sentinel error matching the kind
func (k ErrorKind) Sentinel() error {
	return kindSentinels[k]
}

// KindOf maps an error onto the taxonomy.
// Errors that match no sentinel are reported as KindStoreUnavailable.
func KindOf(err error) ErrorKind {
	var failure *Error
	if errors.As(err, &failure) {
		return failure.Kind
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrAlreadyExists):
		return KindAlreadyExists
	case errors.Is(err, ErrTooLarge):
		return KindTooLarge
	case errors.Is(err, ErrInvalidName):
		return KindInvalidName
	case errors.Is(err, ErrInvalidFormat):
		return KindInvalidFormat
	case errors.Is(err, ErrTransport):
		return KindTransport
	default:
		return KindStoreUnavailable
	}
}

// Error is the failure half of a Result. Message is shown to users verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

// NewError builds an Error with an explicit message, e.g. a server response body.
// Kinds outside the taxonomy are reported as KindStoreUnavailable.
func NewError(kind ErrorKind, message string) *Error {
	if !kind.IsValid() {
		kind = KindStoreUnavailable
	}
	return &Error{Kind: kind, Message: message}
}

// WrapError classifies err and keeps it as the cause
func WrapError(err error) *Error {
	var failure *Error
	if errors.As(err, &failure) {
		return failure
	}
	return &Error{Kind: KindOf(err), Message: err.Error(), cause: err}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is lets errors.Is match the kind's sentinel even when the message was supplied verbatim
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.Sentinel()
}
