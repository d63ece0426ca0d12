// Package cache provides a generic, size-bounded LRU cache.
//
// The editor uses it to keep rendered QR codes: a vCard PNG depends only on
// the card text and image size, and encoding is the most expensive thing the
// server does.
//
//	pngs, _ := cache.New[string, []byte](256)
//	png, err := pngs.GetOrLoad(key, func() ([]byte, error) {
//		return qrcode.Generate(card, size)
//	})
//
// GetOrLoad collapses concurrent loads of the same key into one call.
package cache
