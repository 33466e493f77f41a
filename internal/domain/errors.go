package domain

import "errors"

// Error is a domain error with a stable code used to look up the
// user-facing message.
type Error struct {
	code string
	msg  string
}

func newError(code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable identifier of the error.
func (e *Error) Code() string { return e.code }

// Domain errors.
var (
	ErrMetadataNotFound     = newError("metadata_not_found", "metadata not found")
	ErrUnknownKind          = newError("unknown_kind", "unknown metadata kind")
	ErrUnknownField         = newError("unknown_field", "unknown localized field")
	ErrNameRequired         = newError("name_required", "a name is required")
	ErrActorRequired        = newError("actor_required", "an acting user is required")
	ErrRetireReasonRequired = newError("retire_reason_required", "a reason is required to retire metadata")
)

// Code extracts the domain error code from err, or "" when err is not a
// domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}
