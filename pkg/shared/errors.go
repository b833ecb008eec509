package shared

import "errors"

// ErrorKind classify error for mapping to transport status
type ErrorKind uint8

const (
	// KindInternal store or hashing failure, the default kind of unclassified error
	KindInternal ErrorKind = iota
	// KindBadRequest missing or mistyped input
	KindBadRequest
	// KindNotFound missing account, participant or by-id lookup
	KindNotFound
	// KindConflict duplicate unique value, ex: email
	KindConflict
	// KindInvalidCredential password mismatch
	KindInvalidCredential
)

// String implement fmt.Stringer
func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidCredential:
		return "invalid_credential"
	}
	return "internal"
}

// Error domain error with kind
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implement error
func (e *Error) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap implement errors.Unwrap
func (e *Error) Unwrap() error {
	return e.Err
}

// NewBadRequestError constructor
func NewBadRequestError(message string) error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// NewNotFoundError constructor
func NewNotFoundError(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewConflictError constructor
func NewConflictError(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

// NewInvalidCredentialError constructor
func NewInvalidCredentialError(message string) error {
	return &Error{Kind: KindInvalidCredential, Message: message}
}

// NewInternalError wrap backend failure
func NewInternalError(message string, err error) error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf return kind of given error, nil and unclassified error is internal
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind check error kind
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
