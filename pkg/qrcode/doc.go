// Package qrcode renders QR codes as PNG images or data URIs.
//
// It wraps github.com/skip2/go-qrcode with input checks and a few options.
// The signature tools use it to turn a contact vCard into a scannable image.
//
// # Usage
//
//	png, err := qrcode.Generate(card, 256)
//
//	png, err := qrcode.Encode(card,
//	    qrcode.WithSize(512),
//	    qrcode.WithLevel(qrcode.Low),
//	    qrcode.WithColors(color.RGBA{0xE4, 0x25, 0x27, 0xff}, nil),
//	)
//
//	src := qrcode.DataURI(png) // "data:image/png;base64,..."
//
// Errors are sentinels (ErrEmptyContent, ErrContentTooLong, ErrGenerate) and
// should be checked with errors.Is.
package qrcode
