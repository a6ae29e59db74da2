package http

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Routes(t *testing.T) {
	svcs, _, _, _ := testServices()
	router := newTestRouter(svcs)

	tests := []struct {
		name         string
		method       string
		target       string
		asAlice      bool
		wantStatus   int
		wantLocation string
	}{
		{name: "root redirects home", method: http.MethodGet, target: "/", wantStatus: http.StatusFound, wantLocation: "/home"},
		{name: "home", method: http.MethodGet, target: "/home", wantStatus: http.StatusOK},
		{name: "register page", method: http.MethodGet, target: "/register", wantStatus: http.StatusOK},
		{name: "login page", method: http.MethodGet, target: "/login", wantStatus: http.StatusOK},
		{name: "posts page is public", method: http.MethodGet, target: "/discussions/3", wantStatus: http.StatusOK},

		{name: "logout needs login", method: http.MethodGet, target: "/logout", wantStatus: http.StatusFound, wantLocation: "/login"},
		{name: "new discussion needs login", method: http.MethodGet, target: "/discussions/new", wantStatus: http.StatusFound, wantLocation: "/login"},
		{name: "new post needs login", method: http.MethodGet, target: "/discussions/3/new", wantStatus: http.StatusFound, wantLocation: "/login"},
		{name: "create post needs login", method: http.MethodPost, target: "/discussions/3", wantStatus: http.StatusFound, wantLocation: "/login"},
		{name: "edit page needs login", method: http.MethodGet, target: "/discussions/3/edit/10", wantStatus: http.StatusFound, wantLocation: "/login"},
		{name: "edit needs login", method: http.MethodPost, target: "/discussions/3/edit/10", wantStatus: http.StatusFound, wantLocation: "/login"},
		{name: "delete needs login", method: http.MethodGet, target: "/discussions/3/delete/10", wantStatus: http.StatusFound, wantLocation: "/login"},

		{name: "new discussion page", method: http.MethodGet, target: "/discussions/new", asAlice: true, wantStatus: http.StatusOK},
		{name: "new post page", method: http.MethodGet, target: "/discussions/3/new", asAlice: true, wantStatus: http.StatusOK},
		{name: "new post page of missing discussion", method: http.MethodGet, target: "/discussions/4/new", asAlice: true, wantStatus: http.StatusNotFound},

		{name: "non-numeric discussion id", method: http.MethodGet, target: "/discussions/abc", wantStatus: http.StatusNotFound},
		{name: "negative discussion id", method: http.MethodGet, target: "/discussions/-3", wantStatus: http.StatusNotFound},
		{name: "non-numeric post id", method: http.MethodGet, target: "/discussions/3/edit/x", asAlice: true, wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, target: "/nope", wantStatus: http.StatusNotFound},
		{name: "unsupported method", method: http.MethodDelete, target: "/home", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(router, tt.method, tt.target, nil, tt.asAlice)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			}
		})
	}
}

func TestInit_LoginRedirectCarriesNotice(t *testing.T) {
	svcs, _, _, _ := testServices()
	rr := do(newTestRouter(svcs), http.MethodGet, "/discussions/new", nil, false)

	notice := responseCookie(rr, noticeCookieName)
	require.NotNil(t, notice)
	assert.Equal(t, "Please+log+in+to+access+this+page", notice.Value)
}

func TestInit_BearerSession(t *testing.T) {
	svcs, _, _, _ := testServices()
	router := newTestRouter(svcs)

	req := httptestRequest(http.MethodGet, "/discussions/new")
	req.Header.Set("Authorization", "Bearer "+validSession)

	rr := serve(router, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestInit_Metrics(t *testing.T) {
	svcs, _, _, _ := testServices()
	router := newTestRouter(svcs)

	do(router, http.MethodGet, "/discussions/3", nil, false)
	rr := do(router, http.MethodGet, "/metrics", nil, false)
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `forum_http_requests_total{method="GET",path="/discussions/{discussionID}",status="200"}`)
	assert.Contains(t, string(body), "forum_http_request_duration_seconds")
}
