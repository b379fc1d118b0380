// Package apperrors defines the sentinel errors shared across the service
// and repository layers. Callers wrap them with fmt.Errorf("%w", ...) to add
// context; handlers map them to HTTP status codes with errors.Is.
package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that
// already exists. Duplicate-key failures surface as bad requests on this
// API, not 409s.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")
