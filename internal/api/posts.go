package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell/inkwell-backend/internal/blog"
	"github.com/inkwell/inkwell-backend/internal/service"
)

func (h *Handler) ListPublishedPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.content.ListPublishedPosts(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, posts)
}

func (h *Handler) ListAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.content.ListAllPosts(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, posts)
}

// GetPost serves the published-post detail view: the post, its author,
// the approved comment tree and the interaction counts.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.content.GetPublishedPost(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	author, err := h.accounts.GetUser(r.Context(), post.AuthorID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	comments, err := h.interactions.ListComments(r.Context(), post.ID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	likes, bookmarks, commentCount, err := h.content.PostCounts(r.Context(), post.ID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, PostDetailResponse{
		BlogPost: post,
		Author:   author,
		Comments: comments,
		Counts: CountsDTO{
			Likes:     likes,
			Bookmarks: bookmarks,
			Comments:  commentCount,
		},
	})
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if !h.decode(w, r, &req) {
		return
	}

	post, err := h.content.CreatePost(r.Context(), CurrentUser(r.Context()), service.CreatePostInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Status:        req.Status,
		ReadTime:      req.ReadTime,
		FeaturedImage: req.FeaturedImage,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, PostResponse{Message: "post created", Post: post})
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if !h.decode(w, r, &req) {
		return
	}

	post, err := h.content.UpdatePost(r.Context(), CurrentUser(r.Context()), id, service.UpdatePostInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		ReadTime:      req.ReadTime,
		FeaturedImage: req.FeaturedImage,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, PostResponse{Message: "post updated", Post: post})
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.content.DeletePost(r.Context(), CurrentUser(r.Context()), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeMessage(w, http.StatusOK, "post deleted")
}

func (h *Handler) TransitionPostStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req StatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	post, err := h.content.TransitionPostStatus(r.Context(), id, blog.Status(req.Status))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, PostResponse{Message: "post status updated", Post: post})
}

// pathID parses the {id} route parameter. A false return means the
// error response has already been written.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_ID", "id must be an integer")
		return 0, false
	}
	return id, true
}
