package entity

// Kind classifies which rule a value failed.
type Kind string

const (
	KindRequired   Kind = "required"
	KindLength     Kind = "length"
	KindFormat     Kind = "format"
	KindNotAllowed Kind = "not_allowed"
	KindConflict   Kind = "conflict"
)

// DomainError is the failure signal returned by value-object and entity
// constructors. Code is a stable machine key, Message is safe to show to
// API clients.
type DomainError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func newError(kind Kind, code, message string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: message}
}

var (
	ErrEmptyUserID         = newError(KindRequired, "EMPTY_USER_ID", "user id is required")
	ErrInvalidUserIDFormat = newError(KindFormat, "INVALID_USER_ID_FORMAT", "user id must be a valid UUID v4")

	ErrEmptyUserName   = newError(KindRequired, "EMPTY_USER_NAME", "name is required")
	ErrInvalidUserName = newError(KindLength, "INVALID_USER_NAME", "name must be between 3 and 100 characters")

	ErrEmptyEmail         = newError(KindRequired, "EMPTY_EMAIL", "email is required")
	ErrEmailTooLong       = newError(KindLength, "EMAIL_TOO_LONG", "email must be at most 255 characters")
	ErrInvalidEmailFormat = newError(KindFormat, "INVALID_EMAIL_FORMAT", "email must be a valid email address")
	ErrEmailAlreadyExists = newError(KindConflict, "EMAIL_ALREADY_EXISTS", "email has already been taken")

	ErrEmptyPassword   = newError(KindRequired, "EMPTY_PASSWORD", "password is required")
	ErrInvalidPassword = newError(KindFormat, "INVALID_PASSWORD",
		"password must be 8 to 50 characters with upper and lower case letters, a digit and a symbol, without surrounding spaces")

	ErrEmptyRole         = newError(KindRequired, "EMPTY_ROLE", "role is required")
	ErrInvalidRole       = newError(KindNotAllowed, "INVALID_ROLE", "role must be one of: client, follower, admin")
	ErrRoleNotAssignable = newError(KindNotAllowed, "ROLE_NOT_ASSIGNABLE", "role cannot be chosen at registration")
	ErrEmptyRoles        = newError(KindRequired, "ROLES_REQUIRED", "at least one role is required")
)
