// Package errs provides the tagged error type used throughout the
// application. Instead of a hierarchy of error classes, every expected
// failure is an *Error carrying a Kind tag, a user-facing message, and an
// optional cause. Callers dispatch on the tag via errors.Is against the
// package sentinels (ErrValidation, ErrAuthentication, ErrAuthorization,
// ErrObjectNotFound, ErrInvalidTransition, ErrInfrastructure).
//
// Each kind maps to a fixed HTTP status code through HTTPStatus, so the
// HTTP adapter needs no knowledge of individual failure sites. Operational
// errors (all kinds except Infrastructure) are logged at warning level with
// their precise message; infrastructure errors are logged with full detail
// but surface to callers only as a generic internal error.
package errs
