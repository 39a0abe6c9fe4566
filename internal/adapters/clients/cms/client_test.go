package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/platform/config"
	"github.com/vinhson/vinhson-web/internal/platform/httpclient"
)

// newTestClient creates a Client pointing at the given test server with
// circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string, opts Options) *Client {
	t.Helper()

	return newTestClientWithLogger(t, baseURL, opts, slog.New(slog.DiscardHandler))
}

// newTestClientWithLogger is newTestClient with a caller-supplied logger.
func newTestClientWithLogger(t *testing.T, baseURL string, opts Options, logger *slog.Logger) *Client {
	t.Helper()

	cfg := &config.ClientConfig{
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	if opts.APIVersion == "" {
		opts.APIVersion = "2024-01-01"
	}
	if opts.Dataset == "" {
		opts.Dataset = "production"
	}

	return NewClient(httpclient.New(cfg, baseURL, "sanity-test", nil, logger), opts, logger)
}

// writeResult writes a query API envelope around result.
func writeResult(t *testing.T, w http.ResponseWriter, result any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"ms": 3, "result": result}); err != nil {
		t.Fatalf("failed to encode response: %v", err)
	}
}

func TestClient_GetProduct_RequestShape(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2024-01-01/data/query/production", r.URL.Path)

		q := r.URL.Query()
		assert.Contains(t, q.Get("query"), `_type == "product" && slug.current == $slug`)
		assert.Equal(t, `"may-bom"`, q.Get("$slug"))
		assert.Equal(t, `"vi"`, q.Get("$language"))
		assert.Equal(t, "published", q.Get("perspective"))
		assert.Empty(t, r.Header.Get("Authorization"))

		writeResult(t, w, map[string]any{
			"_id":      "prod-1",
			"name":     "Máy bơm",
			"slug":     map[string]any{"current": "may-bom"},
			"language": "vi",
			"price":    2500000,
			"status":   "published",
		})
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL, Options{})
	got, err := client.GetProduct(context.Background(), domain.LocaleVI, "may-bom")
	require.NoError(t, err)
	assert.Equal(t, "prod-1", got.ID)
	assert.Equal(t, "2500000", got.Price.String())
}

func TestClient_PreviewUsesTokenAndPerspective(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "previewDrafts", r.URL.Query().Get("perspective"))
		writeResult(t, w, []any{})
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL, Options{Token: "sk-test", Perspective: PerspectivePreviewDrafts})
	got, err := client.ListPosts(context.Background(), domain.LocaleEN)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClient_NullResultIsNotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeResult(t, w, nil)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL, Options{})
	ctx := context.Background()

	_, err := client.GetPage(ctx, domain.LocaleVI, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = client.GetPost(ctx, domain.LocaleVI, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = client.GetProduct(ctx, domain.LocaleVI, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = client.GetSiteSettings(ctx, domain.LocaleEN)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	pages, err := client.ListPages(ctx, domain.LocaleVI)
	require.NoError(t, err, "null list result is an empty list")
	assert.Empty(t, pages)
}

func TestClient_ListParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		call      func(c *Client) error
		wantQuery string
		wantParam map[string]string
	}{
		{
			name: "recent posts limit",
			call: func(c *Client) error {
				_, err := c.RecentPosts(context.Background(), domain.LocaleVI, 3)
				return err
			},
			wantQuery: "[0...$limit]",
			wantParam: map[string]string{"$limit": "3", "$language": `"vi"`},
		},
		{
			name: "products by category",
			call: func(c *Client) error {
				_, err := c.ListProductsByCategory(context.Background(), domain.LocaleEN, "cat-1")
				return err
			},
			wantQuery: "category._ref == $categoryId",
			wantParam: map[string]string{"$categoryId": `"cat-1"`, "$language": `"en"`},
		},
		{
			name: "hero banners",
			call: func(c *Client) error {
				_, err := c.ListHeroBanners(context.Background(), domain.LocaleEN)
				return err
			},
			wantQuery: "isActive == true] | order(order asc)",
			wantParam: map[string]string{"$language": `"en"`},
		},
		{
			name: "categories",
			call: func(c *Client) error {
				_, err := c.ListCategories(context.Background(), domain.LocaleVI)
				return err
			},
			wantQuery: "order(name asc)",
			wantParam: map[string]string{"$language": `"vi"`},
		},
		{
			name: "products",
			call: func(c *Client) error {
				_, err := c.ListProducts(context.Background(), domain.LocaleVI)
				return err
			},
			wantQuery: "order(_createdAt desc)",
			wantParam: map[string]string{"$language": `"vi"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				assert.Contains(t, q.Get("query"), tt.wantQuery)
				for k, v := range tt.wantParam {
					assert.Equal(t, v, q.Get(k), "param %s", k)
				}
				writeResult(t, w, []any{})
			}))
			defer ts.Close()

			require.NoError(t, tt.call(newTestClient(t, ts.URL, Options{})))
		})
	}
}

func TestClient_LongQueryIsPosted(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "published", r.URL.Query().Get("perspective"))

		var body queryRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body.Query, "siteSettings")
		assert.Equal(t, "vi", body.Params["language"])
		assert.Len(t, body.Params["slug"], 12000)

		writeResult(t, w, map[string]any{"siteName": "Vĩnh Sơn"})
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL, Options{})
	p := bySlug(domain.LocaleVI, strings.Repeat("a", 12000))

	var out map[string]any
	found, err := client.req.Query(context.Background(), siteSettingsQuery, p, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Vĩnh Sơn", out["siteName"])
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "query parse error",
			status:  http.StatusBadRequest,
			body:    `{"error":{"description":"expected ']'","type":"queryParseError"}}`,
			wantErr: domain.ErrValidation,
			wantMsg: "expected ']'",
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"statusCode":401,"error":"Unauthorized","message":"Session not found"}`,
			wantErr: domain.ErrForbidden,
			wantMsg: "Session not found",
		},
		{
			name:    "unknown dataset",
			status:  http.StatusNotFound,
			body:    `{"error":"Not Found"}`,
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "server error",
			status:  http.StatusBadGateway,
			body:    `oops`,
			wantErr: domain.ErrUnavailable,
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			body:    `{}`,
			wantErr: domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			_, err := newTestClient(t, ts.URL, Options{}).ListCategories(context.Background(), domain.LocaleVI)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestClient_NetworkErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := newTestClient(t, url, Options{}).ListPosts(context.Background(), domain.LocaleVI)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestClient_HealthCheck(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL, Options{})
	assert.Equal(t, "sanity-test", client.Name())
	require.NoError(t, client.HealthCheck(context.Background()))

	for range 5 {
		_, _ = client.ListCategories(context.Background(), domain.LocaleVI)
	}

	err := client.HealthCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker open")
	assert.Equal(t, int32(5), calls.Load())

	_, err = client.ListCategories(context.Background(), domain.LocaleVI)
	assert.True(t, errors.Is(err, domain.ErrUnavailable), "open breaker maps to unavailable: %v", err)
}

func TestClient_ListDropsInvalidDocuments(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeResult(t, w, []any{
			map[string]any{
				"_id":      "post-1",
				"title":    "Khai trương",
				"slug":     map[string]any{"current": "khai-truong"},
				"language": "vi",
				"status":   "published",
			},
			map[string]any{
				"_id":      "post-2",
				"title":    "Bản nháp lỗi",
				"language": "vi",
			},
			map[string]any{
				"_id":      "post-3",
				"title":    "Sai trạng thái",
				"slug":     map[string]any{"current": "sai-trang-thai"},
				"language": "vi",
				"status":   "archived",
			},
		})
	}))
	defer ts.Close()

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	client := newTestClientWithLogger(t, ts.URL, Options{}, logger)

	got, err := client.ListPosts(context.Background(), domain.LocaleVI)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "post-1", got[0].ID)

	out := logs.String()
	assert.Contains(t, out, `"msg":"invalid cms document"`)
	assert.Contains(t, out, `"title":"Bản nháp lỗi"`)
	assert.Contains(t, out, `"title":"Sai trạng thái"`)
	assert.Contains(t, out, `"type":"post"`)
	assert.NotContains(t, out, "Khai trương")
}

func TestClient_ListCategoriesAndBannersDropInvalid(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Query().Get("query"), "heroBanner") {
			writeResult(t, w, []any{
				map[string]any{"_id": "b-1", "title": "Chào mừng", "order": 1},
				map[string]any{"_id": "b-2", "title": "", "order": 2},
				map[string]any{"_id": "b-3", "title": "Âm", "order": -1},
			})
			return
		}
		writeResult(t, w, []any{
			map[string]any{"_id": "cat-1", "name": "Máy bơm", "slug": map[string]any{"current": "may-bom"}},
			map[string]any{"_id": "cat-2", "name": "Không có slug"},
		})
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL, Options{})
	ctx := context.Background()

	banners, err := client.ListHeroBanners(ctx, domain.LocaleVI)
	require.NoError(t, err)
	require.Len(t, banners, 1)
	assert.Equal(t, "b-1", banners[0].ID)

	cats, err := client.ListCategories(ctx, domain.LocaleVI)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "cat-1", cats[0].ID)
}

func TestClient_InvalidSingleDocument(t *testing.T) {
	t.Parallel()

	// A page without a title breaks the schema rules.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeResult(t, w, map[string]any{
			"_id":      "drafts.page-1",
			"slug":     map[string]any{"current": "gioi-thieu"},
			"language": "vi",
			"status":   "draft",
		})
	}))
	t.Cleanup(ts.Close)

	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{
			name:    "published perspective hides it",
			opts:    Options{},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "preview renders the draft",
			opts: Options{Token: "sk-test", Perspective: PerspectivePreviewDrafts},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := newTestClient(t, ts.URL, tt.opts).GetPage(context.Background(), domain.LocaleVI, "gioi-thieu")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "title")
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "drafts.page-1", got.ID)
		})
	}
}

func TestClient_InvalidSettingsAreNotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeResult(t, w, map[string]any{
			"siteName":        "Vĩnh Sơn",
			"categorySection": map[string]any{"title": "Danh mục"},
		})
	}))
	defer ts.Close()

	_, err := newTestClient(t, ts.URL, Options{}).GetSiteSettings(context.Background(), domain.LocaleVI)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "categorySection.description")
}
