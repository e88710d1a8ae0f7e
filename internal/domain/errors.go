package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end time before start time).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnsafeContent is returned when a free-text field trips the content
// safety check before any generation attempt.
// Handlers should map this to HTTP 400.
var ErrUnsafeContent = errors.New("unsafe content")

// ErrUpstream is returned when the external generative model call fails or
// returns a non-2xx status. Handlers should map this to HTTP 502.
var ErrUpstream = errors.New("upstream model error")

// ErrParse is returned when the model response does not contain the expected
// JSON payload. Handlers should map this to HTTP 500.
var ErrParse = errors.New("response parse error")
