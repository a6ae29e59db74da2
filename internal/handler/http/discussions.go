package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-forum/internal/store"
	"github.com/MKhiriev/go-forum/internal/utils"
	"github.com/MKhiriev/go-forum/models"
)

func (h *Handler) discussions(w http.ResponseWriter, r *http.Request) {
	discussions, err := h.services.DiscussionService.ListDiscussions(r.Context())
	if err != nil {
		writeError(w, r, err, "listing discussions failed")
		return
	}

	if discussions == nil {
		discussions = []models.Discussion{}
	}
	writePage(w, r, pageDiscussions, discussions)
}

func (h *Handler) createDiscussion(w http.ResponseWriter, r *http.Request) {
	_, err := h.services.DiscussionService.CreateDiscussion(r.Context(), r.FormValue("title"), r.FormValue("content"))
	if err != nil {
		writeError(w, r, err, "discussion creation failed")
		return
	}

	http.Redirect(w, r, "/discussions", http.StatusFound)
}

func (h *Handler) newDiscussionPage(w http.ResponseWriter, r *http.Request) {
	writePage(w, r, pageNewDiscussion, nil)
}

func (h *Handler) posts(w http.ResponseWriter, r *http.Request) {
	discussionID, err := pathID(r, "discussionID")
	if err != nil {
		writeError(w, r, err, "bad discussion id")
		return
	}

	h.writePostsPage(w, r, discussionID)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	discussionID, err := pathID(r, "discussionID")
	if err != nil {
		writeError(w, r, err, "bad discussion id")
		return
	}

	author, _ := utils.GetAccountFromContext(ctx)
	_, err = h.services.PostService.CreatePost(ctx, discussionID, r.FormValue("title"), r.FormValue("content"), author)
	if err != nil {
		writeError(w, r, err, "post creation failed")
		return
	}

	h.writePostsPage(w, r, discussionID)
}

func (h *Handler) newPostPage(w http.ResponseWriter, r *http.Request) {
	discussionID, err := pathID(r, "discussionID")
	if err != nil {
		writeError(w, r, err, "bad discussion id")
		return
	}

	if _, err = h.services.DiscussionService.GetDiscussion(r.Context(), discussionID); err != nil {
		writeError(w, r, err, "discussion lookup failed")
		return
	}

	writePage(w, r, pageNewPost, models.DiscussionPage{DiscussionID: discussionID})
}

func (h *Handler) editPostPage(w http.ResponseWriter, r *http.Request) {
	discussionID, post, err := h.postFromPath(r)
	if err != nil {
		writeError(w, r, err, "post lookup failed")
		return
	}

	writePage(w, r, pageEdit, models.EditPage{DiscussionID: discussionID, Post: post})
}

func (h *Handler) editPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	discussionID, post, err := h.postFromPath(r)
	if err != nil {
		writeError(w, r, err, "post lookup failed")
		return
	}

	editor, _ := utils.GetAccountFromContext(ctx)
	_, err = h.services.PostService.EditPost(ctx, post.PostID, r.FormValue("title"), r.FormValue("content"), editor)
	if err != nil {
		writeError(w, r, err, "post edit failed")
		return
	}

	http.Redirect(w, r, discussionPath(discussionID), http.StatusFound)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	discussionID, post, err := h.postFromPath(r)
	if err != nil {
		writeError(w, r, err, "post lookup failed")
		return
	}

	editor, _ := utils.GetAccountFromContext(ctx)
	if err = h.services.PostService.DeletePost(ctx, post.PostID, editor); err != nil {
		writeError(w, r, err, "post deletion failed")
		return
	}

	http.Redirect(w, r, discussionPath(discussionID), http.StatusFound)
}

func (h *Handler) writePostsPage(w http.ResponseWriter, r *http.Request, discussionID int64) {
	ctx := r.Context()

	if _, err := h.services.DiscussionService.GetDiscussion(ctx, discussionID); err != nil {
		writeError(w, r, err, "discussion lookup failed")
		return
	}

	posts, err := h.services.PostService.ListPosts(ctx, discussionID)
	if err != nil {
		writeError(w, r, err, "listing posts failed")
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}
	writePage(w, r, pagePosts, models.PostsPage{DiscussionID: discussionID, Posts: posts})
}

// postFromPath loads the post addressed by /discussions/{discussionID}/.../{postID}.
// A post that lives in another discussion is reported as missing.
func (h *Handler) postFromPath(r *http.Request) (int64, models.Post, error) {
	discussionID, err := pathID(r, "discussionID")
	if err != nil {
		return 0, models.Post{}, err
	}
	postID, err := pathID(r, "postID")
	if err != nil {
		return 0, models.Post{}, err
	}

	post, err := h.services.PostService.GetPost(r.Context(), postID)
	if err != nil {
		return 0, models.Post{}, err
	}
	if post.DiscussionID != discussionID {
		return 0, models.Post{}, fmt.Errorf("post %d is not in discussion %d: %w", postID, discussionID, store.ErrPostNotFound)
	}

	return discussionID, post, nil
}

func discussionPath(discussionID int64) string {
	return fmt.Sprintf("/discussions/%d", discussionID)
}
