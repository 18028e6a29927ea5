package validation

import "errors"

// ErrFileTooLarge is returned when an uploaded file exceeds the size limit.
var ErrFileTooLarge = errors.New("file too large")

// ErrUnsupportedMediaType is returned when an uploaded file has a disallowed extension.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// ErrEmptyPost is returned when a post carries neither text nor media.
var ErrEmptyPost = errors.New("empty post")
