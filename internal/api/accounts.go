package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell/inkwell-backend/internal/service"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.accounts.Register(r.Context(), service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Photo:     req.Photo,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, UserResponse{Message: "account created", User: user})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, pair, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, TokenResponse{
		Message: "login successful",
		Access:  pair.Access,
		Refresh: pair.Refresh,
		User:    user,
	})
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, pair, err := h.accounts.Refresh(r.Context(), req.Refresh)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, TokenResponse{
		Message: "token refreshed",
		Access:  pair.Access,
		Refresh: pair.Refresh,
		User:    user,
	})
}

// ForgotPassword answers the same way for known and unknown emails.
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.accounts.ForgotPassword(r.Context(), req.Email)
	h.writeMessage(w, http.StatusOK, "if the email is registered, a reset link has been sent")
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, CurrentUser(r.Context()))
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.accounts.UpdateProfile(r.Context(), CurrentUser(r.Context()).ID, service.UpdateProfileInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Photo:     req.Photo,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, UserResponse{Message: "profile updated", User: user})
}

func (h *Handler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_ID", "user id must be an integer")
		return
	}

	user, err := h.accounts.GetUser(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}
