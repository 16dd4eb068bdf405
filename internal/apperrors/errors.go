package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found, or
// exists but is outside the caller's tenant scope. The two cases are
// deliberately indistinguishable to callers.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that no valid session accompanied the request.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the session is valid but the role or ownership is insufficient.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidSession indicates a missing, malformed, tampered or expired session token.
var ErrInvalidSession = errors.New("invalid session")

// ErrBanned indicates that the account has been banned.
var ErrBanned = errors.New("account banned")
