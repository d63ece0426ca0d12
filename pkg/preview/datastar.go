package preview

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

const (
	// PreviewTarget is the element the live preview is patched into.
	PreviewTarget = "#signature-preview"

	datastarAcceptHeader  = "text/event-stream"
	datastarRequestHeader = "Datastar-Request"
	datastarQueryParam    = "datastar"
)

// IsDataStar reports whether r comes from a Datastar client.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(datastarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), datastarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(datastarQueryParam)
}

// renderFragment writes c as plain HTML, or as an SSE element patch into
// target for Datastar clients.
func renderFragment(w http.ResponseWriter, r *http.Request, c templ.Component, target string) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(c,
			datastar.WithSelector(target),
			datastar.WithMode(datastar.ElementPatchModeInner),
		)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return c.Render(r.Context(), w)
}
