package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		// pages open to everyone
		r.Get("/", redirectTo("/home"))
		r.Get("/home", h.home)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.register)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/discussions", h.discussions)
		r.Post("/discussions", h.createDiscussion)
		r.Get("/discussions/{discussionID}", h.posts)

		// pages that need a logged-in account
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/logout", h.logout)
			r.Get("/discussions/new", h.newDiscussionPage)
			r.Post("/discussions/{discussionID}", h.createPost)
			r.Get("/discussions/{discussionID}/new", h.newPostPage)
			r.Get("/discussions/{discussionID}/edit/{postID}", h.editPostPage)
			r.Post("/discussions/{discussionID}/edit/{postID}", h.editPost)
			r.Get("/discussions/{discussionID}/delete/{postID}", h.deletePost)
		})
	})

	// Unsupported methods on known paths look like unknown paths.
	router.MethodNotAllowed(http.NotFound)

	return router
}

func redirectTo(location string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, location, http.StatusFound)
	}
}
