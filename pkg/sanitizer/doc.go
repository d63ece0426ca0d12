// Package sanitizer turns free-text contact data into values that are safe
// inside email-client HTML.
//
// Text helpers strip control characters and normalise single-line fields.
// Format helpers prepare phone numbers for tel: URIs, add a protocol to bare
// URLs, extract social handles and check accent colours. EscapeHTML and
// SanitizeURL guard anything that lands in markup or an href.
//
//	href := sanitizer.SanitizeURL(input) // "" for javascript:, data:, ...
//	if href != "" {
//		href = sanitizer.NormalizeURL(href) // adds https:// when missing
//	}
//	tel := "tel:" + sanitizer.SanitizePhone("+1 (281) 330-8004") // tel:+12813308004
//
// No helper returns an error. Malformed or oversized input yields the safest
// result, usually "".
package sanitizer
