package adapter

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// noticeCookieName is the cookie the server uses for one-shot messages.
const noticeCookieName = "notice"

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// expectRedirect succeeds when resp redirects to want. A redirect to the
// login page means the session was missing or rejected; a redirect to
// rejectedAt means the server refused the submitted form.
func expectRedirect(resp *resty.Response, want, rejectedAt string) error {
	if resp.StatusCode() != http.StatusFound && resp.StatusCode() != http.StatusSeeOther {
		if err := mapHTTPError(resp); err != nil {
			return err
		}
		return fmt.Errorf("%w: status %d, expected redirect to %s", ErrUnexpectedResponse, resp.StatusCode(), want)
	}

	location := resp.Header().Get("Location")
	notice := noticeFromResponse(resp)

	switch location {
	case want:
		return nil
	case rejectedAt:
		return fmt.Errorf("%w: %s", ErrRejected, notice)
	case "/login":
		return fmt.Errorf("%w: %s", ErrUnauthorized, notice)
	default:
		return fmt.Errorf("%w: redirect to %q", ErrUnexpectedResponse, location)
	}
}

func noticeFromResponse(resp *resty.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name != noticeCookieName {
			continue
		}
		if msg, err := url.QueryUnescape(c.Value); err == nil {
			return msg
		}
	}
	return ""
}
