package middleware_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinhson/vinhson-web/internal/adapters/http/middleware"
)

const redactedValue = "[REDACTED]"

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{
		"Authorization": {"Bearer secret-token"},
		"X-Api-Key":     {"my-api-key-value"},
		"Cookie":        {"__preview=eyJhbGciOi"},
		"Accept":        {"text/html", "application/xhtml+xml"},
		"Content-Type":  {"application/json"},
	}

	attrs := middleware.RedactHeaders(headers)
	require.Len(t, attrs, len(headers))

	values := map[string]string{}
	for _, a := range attrs {
		values[a.Key] = a.Value.String()
	}

	assert.Equal(t, redactedValue, values["Authorization"])
	assert.Equal(t, redactedValue, values["X-Api-Key"])
	assert.Equal(t, redactedValue, values["Cookie"])
	assert.Equal(t, "text/html,application/xhtml+xml", values["Accept"])
	assert.Equal(t, "application/json", values["Content-Type"])
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.RedactHeaders(http.Header{}))
}

func TestRedactQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "no query", raw: "/vi", want: ""},
		{name: "plain params", raw: "/vi/san-pham?category=bom&slide=2", want: "category=bom&slide=2"},
		{
			name: "preview secret",
			raw:  "/api/preview?secret=abc&slug=gioi-thieu",
			want: "secret=%5BREDACTED%5D&slug=gioi-thieu",
		},
		{name: "case insensitive", raw: "/x?Token=abc", want: "Token=%5BREDACTED%5D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := url.Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, middleware.RedactQuery(u))
		})
	}
}
