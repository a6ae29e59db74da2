package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-forum/internal/logger"
	"github.com/MKhiriev/go-forum/models"
)

// sessionCookieName is the cookie the server sets on login.
const sessionCookieName = "session"

// HTTPClientConfig configures [NewHTTPForumClient].
type HTTPClientConfig struct {
	// BaseURL is the server address, with or without scheme
	// (e.g. "localhost:8080").
	BaseURL string
	Timeout time.Duration
}

type httpForumClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// page mirrors models.Page with typed data.
type page[T any] struct {
	Name   string `json:"page"`
	Notice string `json:"notice,omitempty"`
	Data   T      `json:"data"`
}

// NewHTTPForumClient builds a resty-based [ForumClient]. Redirects are not
// followed: the redirect target is how the server reports the outcome of a
// form.
func NewHTTPForumClient(cfg HTTPClientConfig, logger *logger.Logger) (ForumClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid forum address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetCookieJar(nil).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("forum request")
		return nil
	})

	return &httpForumClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpForumClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpForumClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpForumClient) Register(ctx context.Context, username, email, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"email":    email,
			"password": password,
		}).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return expectRedirect(resp, "/login", "/register")
}

func (h *httpForumClient) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = expectRedirect(resp, "/home", ""); err != nil {
		return "", err
	}

	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName && c.Value != "" {
			h.SetToken(c.Value)
			return c.Value, nil
		}
	}

	return "", fmt.Errorf("%w: login response carries no session", ErrUnexpectedResponse)
}

func (h *httpForumClient) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = expectRedirect(resp, "/home", ""); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpForumClient) Version(ctx context.Context) (string, error) {
	var home page[models.HomePage]
	if err := h.getPage(ctx, "/home", &home); err != nil {
		return "", fmt.Errorf("home request: %w", err)
	}

	return home.Data.Version, nil
}

func (h *httpForumClient) ListDiscussions(ctx context.Context) ([]models.Discussion, error) {
	var discussions page[[]models.Discussion]
	if err := h.getPage(ctx, "/discussions", &discussions); err != nil {
		return nil, fmt.Errorf("discussions request: %w", err)
	}

	return discussions.Data, nil
}

func (h *httpForumClient) CreateDiscussion(ctx context.Context, title, content string) error {
	resp, err := h.authedRequest(ctx).
		SetFormData(map[string]string{"title": title, "content": content}).
		Post("/discussions")
	if err != nil {
		return fmt.Errorf("create discussion request: %w", err)
	}

	return expectRedirect(resp, "/discussions", "")
}

func (h *httpForumClient) ListPosts(ctx context.Context, discussionID int64) ([]models.Post, error) {
	var posts page[models.PostsPage]
	if err := h.getPage(ctx, discussionPath(discussionID), &posts); err != nil {
		return nil, fmt.Errorf("posts request: %w", err)
	}

	return posts.Data.Posts, nil
}

func (h *httpForumClient) CreatePost(ctx context.Context, discussionID int64, title, content string) ([]models.Post, error) {
	var posts page[models.PostsPage]

	resp, err := h.authedRequest(ctx).
		SetFormData(map[string]string{"title": title, "content": content}).
		SetResult(&posts).
		Post(discussionPath(discussionID))
	if err != nil {
		return nil, fmt.Errorf("create post request: %w", err)
	}
	if resp.StatusCode() == http.StatusFound {
		return nil, expectRedirect(resp, "", "")
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts.Data.Posts, nil
}

func (h *httpForumClient) EditPost(ctx context.Context, discussionID, postID int64, title, content string) error {
	resp, err := h.authedRequest(ctx).
		SetFormData(map[string]string{"title": title, "content": content}).
		Post(fmt.Sprintf("%s/edit/%d", discussionPath(discussionID), postID))
	if err != nil {
		return fmt.Errorf("edit post request: %w", err)
	}

	return expectRedirect(resp, discussionPath(discussionID), "")
}

func (h *httpForumClient) DeletePost(ctx context.Context, discussionID, postID int64) error {
	resp, err := h.authedRequest(ctx).
		Get(fmt.Sprintf("%s/delete/%d", discussionPath(discussionID), postID))
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return expectRedirect(resp, discussionPath(discussionID), "")
}

func (h *httpForumClient) getPage(ctx context.Context, path string, result any) error {
	resp, err := h.authedRequest(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return err
	}

	return mapHTTPError(resp)
}

// authedRequest attaches the stored session, if any.
func (h *httpForumClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func discussionPath(discussionID int64) string {
	return fmt.Sprintf("/discussions/%d", discussionID)
}
