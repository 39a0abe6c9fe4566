package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/platform/httpclient"
)

// maxGETURLLength is the longest query URL sent with GET; longer queries
// are POSTed.
const maxGETURLLength = 11264

// Perspectives accepted by the query API.
const (
	PerspectivePublished     = "published"
	PerspectivePreviewDrafts = "previewDrafts"
)

// queryResponse is the envelope of every query API response.
type queryResponse struct {
	Result json.RawMessage `json:"result"`
	MS     int             `json:"ms"`
}

// queryRequest is the POST body for long queries.
type queryRequest struct {
	Query  string         `json:"query"`
	Params map[string]any `json:"params,omitempty"`
}

// Requester centralizes the query request lifecycle: URL and parameter
// encoding, GET or POST selection, authorization, execution via
// httpclient.Client, error translation and decoding of the result envelope.
type Requester struct {
	client      *httpclient.Client
	apiVersion  string
	dataset     string
	token       string
	perspective string
	logger      *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client. token
// may be empty for public datasets read through the CDN.
func NewRequester(client *httpclient.Client, opts Options, logger *slog.Logger) *Requester {
	perspective := opts.Perspective
	if perspective == "" {
		perspective = PerspectivePublished
	}
	return &Requester{
		client:      client,
		apiVersion:  opts.APIVersion,
		dataset:     opts.Dataset,
		token:       opts.Token,
		perspective: perspective,
		logger:      logger,
	}
}

// Query runs a GROQ query and decodes the result member into result.
// Parameters are JSON-encoded and sent as $name query arguments. The
// returned bool is false when the result is null.
func (r *Requester) Query(ctx context.Context, query string, params map[string]any, result any) (bool, error) {
	req, err := r.newRequest(ctx, query, params)
	if err != nil {
		return false, err
	}

	var env queryResponse
	if err := r.execute(req, &env); err != nil {
		return false, err
	}

	if len(env.Result) == 0 || bytes.Equal(env.Result, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(env.Result, result); err != nil {
		return false, fmt.Errorf("decoding query result: %w", err)
	}
	return true, nil
}

// CircuitBreakerState returns the circuit breaker state from the underlying
// HTTP client.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

// Name returns the service name of the underlying HTTP client.
func (r *Requester) Name() string {
	return r.client.Name()
}

func (r *Requester) endpoint() string {
	return fmt.Sprintf("%s/v%s/data/query/%s", r.client.BaseURL(), r.apiVersion, url.PathEscape(r.dataset))
}

func (r *Requester) newRequest(ctx context.Context, query string, params map[string]any) (*http.Request, error) {
	values := url.Values{}
	values.Set("query", query)
	for name, v := range params {
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding query parameter %q: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}
	values.Set("perspective", r.perspective)

	getURL := r.endpoint() + "?" + values.Encode()

	var req *http.Request
	if len(getURL) <= maxGETURLLength {
		var err error
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, getURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("creating GET query request: %w", err)
		}
	} else {
		body, err := json.Marshal(queryRequest{Query: query, Params: params})
		if err != nil {
			return nil, fmt.Errorf("marshaling query body: %w", err)
		}
		postURL := r.endpoint() + "?" + url.Values{"perspective": {r.perspective}}.Encode()
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, postURL, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("creating POST query request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("Accept", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	return req, nil
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and decodes the
// envelope. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, env *queryResponse) error {
	resp, err := r.client.Do(req.Context(), req)
	if err != nil {
		// On exhausted retries the last response is returned alongside the
		// error; translate it so callers see a domain error.
		if resp != nil {
			defer r.closeBody(req.Context(), resp)
			return TranslateHTTPError(resp)
		}
		r.logger.ErrorContext(req.Context(), "query failed",
			slog.String("service", r.client.Name()),
			slog.String("method", req.Method),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}
	defer r.closeBody(req.Context(), resp)

	if resp.StatusCode != http.StatusOK {
		translateErr := TranslateHTTPError(resp)
		r.logger.ErrorContext(req.Context(), "unexpected status",
			slog.String("service", r.client.Name()),
			slog.String("method", req.Method),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", translateErr),
		)
		return translateErr
	}

	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
