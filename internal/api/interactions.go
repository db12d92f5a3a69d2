package api

import (
	"net/http"
)

func (h *Handler) AddLike(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	reaction, err := h.interactions.AddLike(r.Context(), CurrentUser(r.Context()), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, ReactionResponse{Message: "post liked", Reaction: reaction})
}

func (h *Handler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.interactions.RemoveLike(r.Context(), CurrentUser(r.Context()), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeMessage(w, http.StatusOK, "like removed")
}

func (h *Handler) LikeCount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	count, err := h.interactions.LikeCount(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, CountResponse{Count: count})
}

func (h *Handler) ListLikes(w http.ResponseWriter, r *http.Request) {
	likes, err := h.interactions.ListLikes(r.Context(), CurrentUser(r.Context()).ID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, likes)
}

func (h *Handler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	reaction, err := h.interactions.AddBookmark(r.Context(), CurrentUser(r.Context()), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, ReactionResponse{Message: "post bookmarked", Reaction: reaction})
}

func (h *Handler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.interactions.RemoveBookmark(r.Context(), CurrentUser(r.Context()), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeMessage(w, http.StatusOK, "bookmark removed")
}

func (h *Handler) BookmarkCount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	count, err := h.interactions.BookmarkCount(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, CountResponse{Count: count})
}

func (h *Handler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := h.interactions.ListBookmarks(r.Context(), CurrentUser(r.Context()).ID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, bookmarks)
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if !h.decode(w, r, &req) {
		return
	}

	comment, err := h.interactions.AddComment(r.Context(), CurrentUser(r.Context()), id, req.Content, req.Parent)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, CommentResponse{Message: "comment submitted", Comment: comment})
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	tree, err := h.interactions.ListComments(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, tree)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.interactions.DeleteComment(r.Context(), CurrentUser(r.Context()), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeMessage(w, http.StatusOK, "comment deleted")
}

func (h *Handler) ApproveComment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.interactions.ApproveComment(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeMessage(w, http.StatusOK, "comment approved")
}
