// Package vcard builds vCard 3.0 contact cards from signature records so the
// same data can be shared as a QR code or a .vcf attachment.
package vcard
