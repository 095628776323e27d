package services

// ErrorKind classifies a service failure so handlers can map it to an HTTP
// status without inspecting message text.
type ErrorKind int

const (
	// ErrorValidation: required input missing or malformed.
	ErrorValidation ErrorKind = iota
	// ErrorDuplicate: unique constraint violation (name already taken).
	ErrorDuplicate
	// ErrorReferenced: the row is still referenced by assets and cannot
	// be deleted.
	ErrorReferenced
	// ErrorNotFound: no row with the given id.
	ErrorNotFound
)

// ServiceError is a classified business-rule failure. Unexpected database
// errors are returned as plain errors and surface as 500s.
type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewValidationError(msg string) *ServiceError {
	return &ServiceError{Kind: ErrorValidation, Message: msg}
}

func NewDuplicateError(msg string) *ServiceError {
	return &ServiceError{Kind: ErrorDuplicate, Message: msg}
}

func NewReferencedError(msg string) *ServiceError {
	return &ServiceError{Kind: ErrorReferenced, Message: msg}
}

func NewNotFoundError(msg string) *ServiceError {
	return &ServiceError{Kind: ErrorNotFound, Message: msg}
}
