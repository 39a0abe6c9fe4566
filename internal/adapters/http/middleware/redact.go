package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

const redacted = "[REDACTED]"

// sensitiveHeaders is the set of header names (lowercase) that must be
// redacted before logging. The cookie header carries the preview session.
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
}

// sensitiveParams lists query parameters that carry credentials. Preview
// links from the CMS pass the shared secret in the query string.
var sensitiveParams = map[string]bool{
	"secret": true,
	"token":  true,
}

// RedactHeaders converts an http.Header map into a slice of slog.Attr values
// suitable for structured logging. Headers whose lowercase name appears in
// sensitiveHeaders are replaced with "[REDACTED]"; all others are included
// as-is. Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redacted))
		} else {
			attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
		}
	}
	return attrs
}

// RedactQuery returns the encoded query string with credential parameters
// masked. Parameters are sorted by key, as url.Values.Encode does.
func RedactQuery(u *url.URL) string {
	if u.RawQuery == "" {
		return ""
	}
	q := u.Query()
	for key := range q {
		if sensitiveParams[strings.ToLower(key)] {
			q.Set(key, redacted)
		}
	}
	return q.Encode()
}
