// Package cms implements the Anti-Corruption Layer for the Sanity content
// lake: GROQ query execution, response decoding and error mapping. Document
// DTOs and their translators live in the document subpackage; image URL
// construction lives in imageurl.
package cms

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/vinhson/vinhson-web/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody matches both error shapes the query API returns:
//
//	{"error": {"description": "...", "type": "queryParseError"}}
//	{"statusCode": 401, "error": "Unauthorized", "message": "..."}
type errorBody struct {
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

type errorDetail struct {
	Description string `json:"description"`
	Type        string `json:"type"`
}

// TranslateHTTPError maps a query API error response to a domain error.
// 400 becomes ErrValidation (usually a GROQ parse error), 401/403
// ErrForbidden, 404 ErrNotFound (unknown dataset), 429 and 5xx
// ErrUnavailable.
func TranslateHTTPError(resp *http.Response) error {
	detail := parseErrorDetail(resp)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseErrorDetail extracts a human-readable description from the body.
// Returns "" when the body is not a recognizable error document.
func parseErrorDetail(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return ""
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}

	var d errorDetail
	if json.Unmarshal(eb.Error, &d) == nil && d.Description != "" {
		return d.Description
	}
	if eb.Message != "" {
		return eb.Message
	}
	var s string
	if json.Unmarshal(eb.Error, &s) == nil {
		return s
	}
	return ""
}
