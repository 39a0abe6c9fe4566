package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vinhson/vinhson-web/internal/adapters/clients/cms/imageurl"
	"github.com/vinhson/vinhson-web/internal/adapters/http/handlers"
	"github.com/vinhson/vinhson-web/internal/adapters/http/views"
	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/domain/settings"
	"github.com/vinhson/vinhson-web/internal/platform/i18n"
	"github.com/vinhson/vinhson-web/mocks"
)

const testBaseURL = "https://vinhson.com.vn"

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newSiteHandler wires a SiteHandler to real views and a mocked service
// whose settings lookups always succeed.
func newSiteHandler(t *testing.T) (*handlers.SiteHandler, *mocks.MockSiteService) {
	t.Helper()

	svc := mocks.NewMockSiteService(t)
	svc.EXPECT().Settings(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, l domain.Locale) (*settings.SiteSettings, error) {
			return &settings.SiteSettings{Language: l, SiteName: "Vĩnh Sơn"}, nil
		}).Maybe()
	return siteHandlerFor(t, svc), svc
}

func siteHandlerFor(t *testing.T, svc *mocks.MockSiteService) *handlers.SiteHandler {
	t.Helper()

	catalog, err := i18n.Load()
	require.NoError(t, err)
	renderer, err := views.NewRenderer()
	require.NoError(t, err)
	presenter := views.NewPresenter(renderer, catalog, imageurl.New("", "proj", "production"),
		views.PresenterOptions{BaseURL: testBaseURL, SiteName: "Vĩnh Sơn"}, nil)
	return handlers.NewSiteHandler(svc, presenter, renderer)
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
