package notification

import "errors"

var (
	ErrRenderFailed       = errors.New("failed to render notification")
	ErrLayoutNotFound     = errors.New("notification layout not found")
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
	ErrNilDocument        = errors.New("notification document is nil")
)
