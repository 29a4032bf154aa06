package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
// The operation is blocked before any persistence is attempted.
var ErrValidation = errors.New("validation error")

// ErrStoreUnavailable indicates the persistence collaborator could not be
// reached or errored. Callers surface it once and keep last-known-good
// in-memory state; it is never fatal to the process.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrExportEmpty indicates the selected export period contains no records,
// so no document is produced.
var ErrExportEmpty = errors.New("no expenses in selected period")
