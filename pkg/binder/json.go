package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/dmitrymomot/sigkit/pkg/sanitizer"
)

// DefaultMaxJSONSize is the maximum accepted JSON body (64KB).
const DefaultMaxJSONSize = 64 << 10

// JSON binds a strict JSON body: unknown fields and trailing data are
// rejected, and every decoded string has NUL bytes and non-whitespace control
// characters removed.
//
//	var cfg signature.RenderConfig
//	if err := binder.JSON()(r, &cfg); err != nil {
//		// 400
//	}
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return err
		}
		if mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: read body: %v", ErrInvalidJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: body larger than %d bytes", ErrInvalidJSON, DefaultMaxJSONSize)
		}

		dec := json.NewDecoder(bytes.NewReader(body))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		if dec.More() {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
		}

		sanitizeStrings(reflect.ValueOf(v))
		return nil
	}
}

// sanitizeStrings walks v and cleans every settable string in place.
func sanitizeStrings(v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(sanitizeString(v.String()))
		}
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			sanitizeStrings(v.Elem())
		}
	case reflect.Struct:
		for i := range v.NumField() {
			sanitizeStrings(v.Field(i))
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			sanitizeStrings(v.Index(i))
		}
	}
}

func sanitizeString(s string) string {
	return sanitizer.RemoveControlChars(sanitizer.RemoveNullBytes(s))
}
