package errs

import "errors"

// Error classes shared across use cases. Specific sentinels belong to one
// class so the transport layer can pick a status without knowing every
// use-case error.
var (
	ErrValidation       = errors.New("validation failed")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrConflict         = errors.New("conflict")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrUnavailable      = errors.New("service unavailable")
	ErrUpstream         = errors.New("upstream failure")
)

type classifiedError struct {
	msg   string
	class error
}

func (e *classifiedError) Error() string { return e.msg }
func (e *classifiedError) Is(target error) bool {
	return target == e.class
}

// Class builds a sentinel that errors.Is also matches against class.
func Class(msg string, class error) error {
	return &classifiedError{msg: msg, class: class}
}

// PublicMessage returns the message of the first classified sentinel in
// err's chain, including sentinels attached with Mark.
func PublicMessage(err error) (string, bool) {
	for err != nil {
		switch e := err.(type) {
		case *classifiedError:
			return e.msg, true
		case *markedError:
			if msg, ok := PublicMessage(e.mark); ok {
				return msg, true
			}
		}
		err = errors.Unwrap(err)
	}
	return "", false
}
