// Package signature renders contact records into email-safe HTML signatures.
//
// Output is always a self-contained fragment: an optional <style> block with
// dark-mode overrides followed by a table-based layout with inline CSS. Six
// layouts are available (classic, professional, compact, modern, creative and
// minimal); they differ only in arrangement and share the same builders for
// logos, contact tiers and the corporate "Follow us" block.
//
// # Usage
//
//	gen := signature.New(
//	    signature.WithEnvironment(environment.Production),
//	    signature.WithLogger(log),
//	)
//
//	html := gen.Generate(ctx, signature.RenderConfig{
//	    Data: signature.ContactRecord{
//	        Name:  "Jasmine Frank",
//	        Title: "Director of Marketing",
//	        Email: "jasmine.frank@zohocorp.com",
//	        Phone: "+1 (281) 330-8004",
//	    },
//	    Style:       signature.StyleClassic,
//	    AccentColor: "#E42527",
//	})
//
// Preview returns the live-preview variant, whose dark-mode rules follow a
// .dark-mode class on the host page instead of the OS colour scheme.
// Component and PreviewComponent expose both as templ components.
//
// # Failure handling
//
// Generate and Preview never fail. An unknown style renders as classic, a
// broken social block is dropped, a failing layout is retried as classic, and
// if classic fails too a plain text signature with the name, role, email and
// phone is returned. Every fallback step is logged through the injected
// *slog.Logger.
//
// ValidateRecord reports form-level problems (allowed email domains, phone
// shape, unsafe links) but is never called by Generate.
package signature
