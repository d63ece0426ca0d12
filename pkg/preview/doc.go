// Package preview serves the signature editor over HTTP.
//
// The editor page binds its form to Datastar signals. Every change posts the
// signals to /preview, which answers with an SSE element patch replacing the
// contents of #signature-preview. Clients without Datastar get the same
// fragment as plain HTML, so the endpoints also work with curl:
//
//	curl -d 'name=Jasmine Frank&style=modern' localhost:8080/preview
//	curl -d 'name=Jasmine Frank' -OJ localhost:8080/export
//	curl 'localhost:8080/vcard.png?name=Jasmine+Frank&email=jasmine@zohocorp.com' > card.png
//
// Routes:
//
//	GET  /           editor page
//	POST /preview    preview fragment
//	POST /export     copy-mode HTML as an attachment
//	POST /validate   advisory field validation as JSON
//	GET  /styles     available styles as JSON
//	GET  /health     liveness and readiness probe
//	GET  /vcard.png  contact QR code
//	GET  /assets/*   static assets, when configured with WithAssets
package preview
