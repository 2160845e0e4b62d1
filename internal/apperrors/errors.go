package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or wrong credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUnsupportedVersion indicates an import bundle written by an unknown format version.
var ErrUnsupportedVersion = errors.New("unsupported export version")
