package qrcode

import (
	"encoding/base64"
	"errors"
	"image/color"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when content is empty or only whitespace.
	ErrEmptyContent = errors.New("qrcode: content cannot be empty")
	// ErrContentTooLong is returned when content exceeds MaxContentLength.
	ErrContentTooLong = errors.New("qrcode: content too long")
	// ErrGenerate is returned when the encoder fails.
	ErrGenerate = errors.New("qrcode: failed to generate")
)

const (
	// DefaultSize is the image edge in pixels used when no size is given.
	DefaultSize = 256
	// MaxContentLength is the largest payload accepted at the lowest
	// recovery level. vCards with long URLs get close to it.
	MaxContentLength = 2953
)

// Level is the error recovery level of the code.
type Level = skipqrcode.RecoveryLevel

const (
	Low     Level = skipqrcode.Low
	Medium  Level = skipqrcode.Medium
	High    Level = skipqrcode.High
	Highest Level = skipqrcode.Highest
)

type options struct {
	size       int
	level      Level
	foreground color.Color
	background color.Color
	noBorder   bool
}

// Option customises Encode.
type Option func(*options)

// WithSize sets the image edge in pixels. Non-positive values are ignored.
func WithSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.size = px
		}
	}
}

// WithLevel sets the recovery level.
func WithLevel(l Level) Option {
	return func(o *options) { o.level = l }
}

// WithColors sets foreground and background colours. Nil keeps the default.
func WithColors(fg, bg color.Color) Option {
	return func(o *options) {
		if fg != nil {
			o.foreground = fg
		}
		if bg != nil {
			o.background = bg
		}
	}
}

// WithoutBorder drops the quiet zone around the code.
func WithoutBorder() Option {
	return func(o *options) { o.noBorder = true }
}

// Encode renders content as a PNG.
func Encode(content string, opts ...Option) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if len(content) > MaxContentLength {
		return nil, ErrContentTooLong
	}

	o := options{
		size:       DefaultSize,
		level:      Medium,
		foreground: color.Black,
		background: color.White,
	}
	for _, opt := range opts {
		opt(&o)
	}

	q, err := skipqrcode.New(content, o.level)
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	q.ForegroundColor = o.foreground
	q.BackgroundColor = o.background
	q.DisableBorder = o.noBorder

	png, err := q.PNG(o.size)
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	return png, nil
}

// Generate renders content as a size x size PNG at medium recovery.
func Generate(content string, size int) ([]byte, error) {
	return Encode(content, WithSize(size))
}

// DataURI wraps PNG bytes as a data URI for <img src>.
func DataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

// GenerateBase64Image is Generate followed by DataURI.
func GenerateBase64Image(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return DataURI(png), nil
}
