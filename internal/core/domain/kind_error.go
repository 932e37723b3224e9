package domain

// KindError ties a failure to one of the error kinds declared in this
// package. It matches Kind with errors.Is and unwraps to Cause.
type KindError struct {
	Kind  error
	Cause error
}

// WrapKind marks cause as an error of the given kind. It returns nil when
// cause is nil.
func WrapKind(kind, cause error) error {
	if cause == nil {
		return nil
	}
	return &KindError{Kind: kind, Cause: cause}
}

func (e *KindError) Error() string {
	return e.Message() + ": " + e.Cause.Error()
}

// Message returns the text of the kind without its cause.
func (e *KindError) Message() string {
	return e.Kind.Error()
}

// Is reports whether target is the error's kind.
func (e *KindError) Is(target error) bool {
	return target == e.Kind
}

func (e *KindError) Unwrap() error {
	return e.Cause
}
