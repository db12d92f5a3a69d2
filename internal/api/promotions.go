package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell/inkwell-backend/internal/service"
)

func (h *Handler) ListPublishedPromotions(w http.ResponseWriter, r *http.Request) {
	promos, err := h.content.ListPublishedPromotions(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, promos)
}

func (h *Handler) GetPromotion(w http.ResponseWriter, r *http.Request) {
	promo, err := h.content.GetPublishedPromotion(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, promo)
}

func (h *Handler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	var req CreatePromotionRequest
	if !h.decode(w, r, &req) {
		return
	}

	promo, err := h.content.CreatePromotion(r.Context(), CurrentUser(r.Context()), service.CreatePromotionInput{
		Slogan:  req.Slogan,
		Slug:    req.Slug,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, PromotionResponse{Message: "promotion created", Promotion: promo})
}

func (h *Handler) UpdatePromotion(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req UpdatePromotionRequest
	if !h.decode(w, r, &req) {
		return
	}

	promo, err := h.content.UpdatePromotion(r.Context(), CurrentUser(r.Context()), id, service.UpdatePromotionInput{
		Slogan:  req.Slogan,
		Slug:    req.Slug,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, PromotionResponse{Message: "promotion updated", Promotion: promo})
}

func (h *Handler) DeletePromotion(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.content.DeletePromotion(r.Context(), CurrentUser(r.Context()), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeMessage(w, http.StatusOK, "promotion deleted")
}
