package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-forum/internal/logger"
	"github.com/MKhiriev/go-forum/internal/utils"
	"github.com/MKhiriev/go-forum/models"
)

// Page names written into [models.Page.Name].
const (
	pageHome          = "home"
	pageRegister      = "register"
	pageLogin         = "login"
	pageDiscussions   = "discussions"
	pageNewDiscussion = "new_discussion"
	pagePosts         = "posts"
	pageNewPost       = "new_post"
	pageEdit          = "edit"
)

// writePage renders a page payload for the current caller, consuming any
// pending notice.
func writePage(w http.ResponseWriter, r *http.Request, name string, data any) {
	page := models.Page{
		Name:   name,
		Notice: popNotice(w, r),
		Data:   data,
	}
	if account, ok := utils.GetAccountFromContext(r.Context()); ok {
		page.Account = &account
	}

	if _, err := utils.WriteJSON(w, page, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("page", name).Msg("page rendering failed")
	}
}

// pathID reads a positive numeric chi URL parameter.
func pathID(r *http.Request, key string) (int64, error) {
	id, ok := utils.ParsePositiveID(chi.URLParam(r, key))
	if !ok {
		return 0, ErrInvalidPathID
	}
	return id, nil
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	writePage(w, r, pageHome, models.HomePage{
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	})
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	writePage(w, r, pageRegister, nil)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	writePage(w, r, pageLogin, nil)
}
