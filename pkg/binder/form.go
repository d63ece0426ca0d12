package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory bounds multipart form parsing (1MB). Signature forms carry
// a handful of short text fields.
const DefaultMaxMemory = 1 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data
// values. File parts are ignored.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Repeated fields and comma-separated values both fill slices, so
// channels=linkedin&channels=twitter and channels=linkedin,twitter bind the
// same way.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return err
		}

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindValues(v, "form", r.PostForm, ErrInvalidForm)

		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindValues(v, "form", r.MultipartForm.Value, ErrInvalidForm)

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
		}
	}
}

// Query binds URL query parameters using `query` struct tags.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindValues(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}

// Request picks a binder from the request: JSON bodies, form bodies, and
// query parameters for bodiless requests.
func Request() func(r *http.Request, v any) error {
	jsonBinder, formBinder, queryBinder := JSON(), Form(), Query()
	return func(r *http.Request, v any) error {
		if r.Header.Get("Content-Type") == "" {
			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.ContentLength == 0 {
				return queryBinder(r, v)
			}
		}
		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return err
		}
		if mediaType == "application/json" {
			return jsonBinder(r, v)
		}
		return formBinder(r, v)
	}
}

func mediaTypeOf(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", fmt.Errorf("%w: expected application/json or a form body", ErrMissingContentType)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	return mediaType, nil
}
