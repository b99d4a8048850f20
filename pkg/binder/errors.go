package binder

import "errors"

var (
	// ErrMissingContentType is returned when the request has no Content-Type header.
	ErrMissingContentType = errors.New("missing content type")
	// ErrUnsupportedMediaType is returned for non-JSON content types.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrInvalidJSON is returned when the body is not a single valid JSON document.
	ErrInvalidJSON = errors.New("invalid JSON")
)
