// Package binder decodes HTTP request data into structs for the preview
// server.
//
// Binders are plain functions with the signature
// func(r *http.Request, v any) error:
//
//   - JSON(): strict JSON bodies (unknown fields and trailing data rejected,
//     64KB limit, control characters stripped from strings)
//   - Form(): urlencoded and multipart form values, `form` tags
//   - Query(): URL query parameters, `query` tags
//   - Request(): picks one of the above from the method and Content-Type
//
// Slices accept repeated keys and comma-separated values. Bool fields accept
// "on", "yes" and "1" so HTML checkboxes bind without extra handling.
//
//	type previewForm struct {
//	    Name     string   `form:"name" query:"name"`
//	    Channels []string `form:"channels" query:"channels"`
//	    Social   bool     `form:"social" query:"social"`
//	}
//
//	var f previewForm
//	if err := binder.Request()(r, &f); err != nil {
//	    // errors.Is(err, binder.ErrInvalidForm) ...
//	}
//
// Errors wrap ErrUnsupportedMediaType, ErrMissingContentType, ErrInvalidJSON,
// ErrInvalidForm or ErrInvalidQuery.
package binder
