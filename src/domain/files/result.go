package files

// Result is the return shape of every store and transfer operation.
// It is either a success holding a payload or a failure holding an *Error;
// the zero value is a success with a zero payload.
type Result[T any] struct {
	payload T
	err     *Error
}

// Success wraps a successful payload
func Success[T any](payload T) Result[T] {
	return Result[T]{payload: payload}
}

// Failure wraps err, classifying it into an ErrorKind
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = ErrStoreUnavailable
	}
	return Result[T]{err: WrapError(err)}
}

// FailureWith builds a failure with a verbatim message
func FailureWith[T any](kind ErrorKind, message string) Result[T] {
	return Result[T]{err: NewError(kind, message)}
}

// IsSuccessful reports whether the result holds a payload
func (r Result[T]) IsSuccessful() bool {
	return r.err == nil
}

// Payload returns the payload, or the zero value on failure
func (r Result[T]) Payload() T {
	if r.err != nil {
		var zero T
		return zero
	}
	return r.payload
}

// ErrorMessage returns the human-readable failure message, empty on success
func (r Result[T]) ErrorMessage() string {
	if r.err == nil {
		return ""
	}
	return r.err.Message
}

// Kind returns the failure kind, empty on success
func (r Result[T]) Kind() ErrorKind {
	if r.err == nil {
		return ""
	}
	return r.err.Kind
}

// Err returns the failure as an error, nil on success
func (r Result[T]) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// Get unpacks the result in the usual (value, error) form
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.payload, nil
}
