package server

import (
	"bytes"
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
)

// renderHTML converts the sanitized report Markdown to HTML for display.
// Rendering is best effort; on failure the caller still has the plain text.
func renderHTML(md string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		log.Warn().Err(err).Msg("markdown render failed")
		return ""
	}
	return buf.String()
}

func contextWithStepTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), stepTimeout)
}
