package signature

import "errors"

var (
	// ErrUnknownStyle is logged when a requested style is not registered.
	ErrUnknownStyle = errors.New("signature: unknown style")
	// ErrLayoutFailed is returned when a layout produced unusable output.
	ErrLayoutFailed = errors.New("signature: layout failed")
	// ErrLayoutPanic wraps a panic recovered from a layout.
	ErrLayoutPanic = errors.New("signature: layout panicked")
	// ErrSocialLinks is returned when the corporate social block cannot be built.
	ErrSocialLinks = errors.New("signature: social links failed")
)
