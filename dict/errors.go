package dict

import (
	"errors"
	"fmt"
)

var (
	ErrMalformed       = errors.New("malformed response")
	ErrUnknownField    = errors.New("unknown field")
	ErrIncompleteField = errors.New("incomplete field")
)

// DecodeError describes why response body could not be turned into
// fragments. Use errors.Is with ErrMalformed, ErrUnknownField or
// ErrIncompleteField to check the kind.
type DecodeError struct {
	Kind DecodeErrorKind
	// Tag is the offending element, empty for malformed documents.
	Tag string
	Err error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case DecodeErrorKindUnknownField:
		return fmt.Sprintf("%v %q", ErrUnknownField, e.Tag)
	case DecodeErrorKindIncompleteField:
		if e.Err != nil {
			return fmt.Sprintf("%v %q: %v", ErrIncompleteField, e.Tag, e.Err)
		}
		return fmt.Sprintf("%v %q", ErrIncompleteField, e.Tag)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%v: %v", ErrMalformed, e.Err)
		}
		return ErrMalformed.Error()
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrMalformed:
		return e.Kind == DecodeErrorKindMalformed
	case ErrUnknownField:
		return e.Kind == DecodeErrorKindUnknownField
	case ErrIncompleteField:
		return e.Kind == DecodeErrorKindIncompleteField
	}
	return false
}
