package domain

import "errors"

// ErrKind classifies every failure a console operation can surface.
// All kinds are reported to the operator as a non-blocking toast; none
// may crash a view.
type ErrKind int

const (
	KindUnknown ErrKind = iota
	// KindValidation covers missing or malformed required fields,
	// detected locally or by the server (4xx).
	KindValidation
	// KindNotFound means the server does not know the id.
	KindNotFound
	// KindServer covers 5xx responses.
	KindServer
	// KindNetwork covers transport failures.
	KindNetwork
	// KindTimeout means an upload exceeded its fixed bound.
	KindTimeout
	// KindFileTooLarge and KindUnsupportedFormat are local upload
	// precondition failures; they never reach the network layer.
	KindFileTooLarge
	KindUnsupportedFormat
	// KindInvalidCredentials is a failed login against the gate.
	KindInvalidCredentials
)

func (k ErrKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindFileTooLarge:
		return "file_too_large"
	case KindUnsupportedFormat:
		return "unsupported_format"
	case KindInvalidCredentials:
		return "invalid_credentials"
	default:
		return "unknown"
	}
}

// Error carries an ErrKind plus an operator-facing message. Message is
// the server-provided text when one exists, otherwise a generic one
// chosen by the caller.
type Error struct {
	Kind    ErrKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// E builds a classified error.
func E(kind ErrKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies an underlying error.
func Wrap(kind ErrKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf extracts the classification of err, or KindUnknown.
func KindOf(err error) ErrKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrKind) bool {
	return KindOf(err) == kind
}
