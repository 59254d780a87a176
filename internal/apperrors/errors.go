package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a conditional update lost against a concurrent
// write. Callers may re-read and retry.
var ErrConflict = errors.New("resource was modified concurrently")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks permission for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrRateUnavailable indicates that no exchange rate could be served:
// there is no cached entry and the upstream fetch failed.
var ErrRateUnavailable = errors.New("exchange rate unavailable")
