// Package slug turns display text into ASCII identifiers for file names and
// URLs.
//
//	slug.Make("Zoë Ångström")                              // "zoe-angstrom"
//	slug.Make("Director of Marketing", slug.MaxLength(12)) // "director-of"
//
// Export downloads are named after the person, e.g.
// "jasmine-frank-signature.html".
package slug
