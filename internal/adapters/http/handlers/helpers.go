// Package handlers provides the HTTP handlers for the site's pages, its
// CMS-facing API endpoints, the SEO files and the health probes.
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/platform/i18n"
	"github.com/vinhson/vinhson-web/internal/platform/logging"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeXML  = "application/xml"
	cacheNoStore    = "no-store"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// writeText writes a plain-text response with the given status code.
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as a single JSON object into dst.
// The body is limited to maxJSONBodyBytes to prevent resource exhaustion.
// Any other top-level value, or data after the object, is rejected.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	dec := json.NewDecoder(r.Body)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return invalidBody(fmt.Sprintf("invalid JSON: %v", err))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return invalidBody("unexpected data after JSON object")
	}
	if raw = bytes.TrimSpace(raw); len(raw) == 0 || raw[0] != '{' {
		return invalidBody("body must be a JSON object")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return invalidBody(fmt.Sprintf("invalid JSON: %v", err))
	}
	return nil
}

func invalidBody(msg string) error {
	return &domain.ValidationError{Fields: map[string]string{"body": msg}}
}

// pathLocale returns the locale named by the first path segment, if any.
func pathLocale(path string) (domain.Locale, bool) {
	first, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	l := domain.Locale(first)
	return l, l.IsValid()
}

// requestLocale picks the locale for responses that are not under a locale
// route: the path prefix when present, otherwise Accept-Language.
func requestLocale(r *http.Request) domain.Locale {
	if l, ok := pathLocale(r.URL.Path); ok {
		return l
	}
	return i18n.Negotiate(r.Header.Get("Accept-Language"))
}
