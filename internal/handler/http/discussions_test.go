package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-forum/internal/service"
	"github.com/MKhiriev/go-forum/internal/store"
	"github.com/MKhiriev/go-forum/models"
)

func TestCreateDiscussion(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantLocation string
	}{
		{name: "created", wantStatus: http.StatusFound, wantLocation: "/discussions"},
		{name: "empty title", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "store failure", err: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs, _, discussions, _ := testServices()
			discussions.createFn = func(_ context.Context, title, content string) (models.Discussion, error) {
				assert.Equal(t, "T1", title)
				assert.Equal(t, "C1", content)
				return discussionT1, tt.err
			}

			// anonymous callers may create discussions
			rr := do(newTestRouter(svcs), http.MethodPost, "/discussions", url.Values{"title": {"T1"}, "content": {"C1"}}, false)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
		})
	}
}

func TestPostsPage_MissingDiscussion(t *testing.T) {
	svcs, _, _, _ := testServices()

	rr := do(newTestRouter(svcs), http.MethodGet, "/discussions/4", nil, false)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "created", wantStatus: http.StatusOK},
		{name: "empty title", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "missing discussion", err: store.ErrDiscussionNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs, _, _, posts := testServices()
			posts.createFn = func(_ context.Context, discussionID int64, title, content string, author models.Account) (models.Post, error) {
				assert.Equal(t, int64(3), discussionID)
				assert.Equal(t, "P1", title)
				assert.Equal(t, "body1", content)
				assert.Equal(t, alice.AccountID, author.AccountID)
				return postP1, tt.err
			}

			rr := do(newTestRouter(svcs), http.MethodPost, "/discussions/3", url.Values{"title": {"P1"}, "content": {"body1"}}, true)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rr.Body.String(), `"page":"posts"`)
			}
		})
	}
}

func TestEditPost(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		err          error
		wantCalled   bool
		wantStatus   int
		wantLocation string
	}{
		{name: "edited", target: "/discussions/3/edit/10", wantCalled: true, wantStatus: http.StatusFound, wantLocation: "/discussions/3"},
		{name: "not the author", target: "/discussions/3/edit/10", err: service.ErrForbidden, wantCalled: true, wantStatus: http.StatusForbidden},
		{name: "deleted meanwhile", target: "/discussions/3/edit/10", err: store.ErrPostNotFound, wantCalled: true, wantStatus: http.StatusNotFound},
		{name: "missing post", target: "/discussions/3/edit/11", wantStatus: http.StatusNotFound},
		{name: "post of another discussion", target: "/discussions/4/edit/10", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs, _, _, posts := testServices()
			called := false
			posts.editFn = func(_ context.Context, postID int64, title, content string, editor models.Account) (models.Post, error) {
				called = true
				assert.Equal(t, postP1.PostID, postID)
				assert.Equal(t, "X", title)
				assert.Equal(t, "Y", content)
				assert.Equal(t, alice.AccountID, editor.AccountID)
				return postP1, tt.err
			}

			rr := do(newTestRouter(svcs), http.MethodPost, tt.target, url.Values{"title": {"X"}, "content": {"Y"}}, true)

			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
		})
	}
}

func TestEditPostPage_MissingPost(t *testing.T) {
	svcs, _, _, _ := testServices()

	rr := do(newTestRouter(svcs), http.MethodGet, "/discussions/3/edit/11", nil, true)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeletePost(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantLocation string
	}{
		{name: "deleted", wantStatus: http.StatusFound, wantLocation: "/discussions/3"},
		{name: "not the author", err: service.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "store failure", err: errors.New("disk gone"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs, _, _, posts := testServices()
			posts.deleteFn = func(_ context.Context, postID int64, editor models.Account) error {
				assert.Equal(t, postP1.PostID, postID)
				assert.Equal(t, alice.AccountID, editor.AccountID)
				return tt.err
			}

			rr := do(newTestRouter(svcs), http.MethodGet, "/discussions/3/delete/10", nil, true)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
		})
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: ErrInvalidPathID, want: http.StatusNotFound},
		{err: store.ErrPostNotFound, want: http.StatusNotFound},
		{err: service.ErrForbidden, want: http.StatusForbidden},
		{err: service.ErrInvalidDataProvided, want: http.StatusBadRequest},
		{err: errors.New("unknown"), want: http.StatusInternalServerError},
		{err: fmt.Errorf("%w: %w", service.ErrUnauthenticated, store.ErrAccountNotFound), want: http.StatusUnauthorized},
		{err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, store.ErrPostNotFound), want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			for range 100 {
				require.Equal(t, tt.want, statusFromError(tt.err))
			}
		})
	}
}
