package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/inkwell/inkwell-backend/internal/config"
	"github.com/inkwell/inkwell-backend/internal/media"
	"github.com/inkwell/inkwell-backend/internal/service"
	"github.com/inkwell/inkwell-backend/internal/store"
)

// MetricsInterface defines the interface for metrics recording
type MetricsInterface interface {
	RecordHTTPRequest(ctx context.Context, method, path string, status int, duration time.Duration)
}

type Handler struct {
	accounts     *service.AccountService
	content      *service.ContentService
	interactions *service.InteractionService
	notifier     *service.NotificationService
	media        media.Store
	db           *sql.DB
	sessions     *store.Sessions
	config       *config.Config
	logger       *zap.SugaredLogger
	metrics      MetricsInterface
	validate     *validator.Validate
}

func NewHandler(
	accounts *service.AccountService,
	content *service.ContentService,
	interactions *service.InteractionService,
	notifier *service.NotificationService,
	mediaStore media.Store,
	db *sql.DB,
	sessions *store.Sessions,
	config *config.Config,
	logger *zap.SugaredLogger,
	metrics MetricsInterface,
) *Handler {
	return &Handler{
		accounts:     accounts,
		content:      content,
		interactions: interactions,
		notifier:     notifier,
		media:        mediaStore,
		db:           db,
		sessions:     sessions,
		config:       config,
		logger:       logger,
		metrics:      metrics,
		validate:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			h.writeError(w, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "database is not reachable")
			return
		}
	}
	if h.sessions != nil {
		if err := h.sessions.Ping(ctx); err != nil {
			h.writeError(w, http.StatusServiceUnavailable, "SESSIONS_UNAVAILABLE", "session store is not reachable")
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}

// decode parses and validates a JSON request body. A false return means
// the error response has already been written.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) writeMessage(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, MessageResponse{Message: message})
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	if status >= http.StatusInternalServerError {
		h.logger.Errorw("API error", "code", code, "message", message, "status", status)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// writeServiceError maps the service sentinels onto the error taxonomy.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrForbidden):
		h.writeError(w, http.StatusForbidden, "FORBIDDEN", "you do not own this resource")
	case errors.Is(err, service.ErrInvalidCredentials):
		h.writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	case errors.Is(err, service.ErrInvalidToken):
		h.writeError(w, http.StatusUnauthorized, "INVALID_TOKEN", "token is invalid or expired")
	case errors.Is(err, service.ErrEmailTaken):
		h.writeError(w, http.StatusBadRequest, "EMAIL_TAKEN", "email is already registered")
	case errors.Is(err, service.ErrUsernameTaken):
		h.writeError(w, http.StatusBadRequest, "USERNAME_TAKEN", "username is already taken")
	case errors.Is(err, service.ErrSlugTaken):
		h.writeError(w, http.StatusBadRequest, "SLUG_TAKEN", "slug is already in use")
	case errors.Is(err, service.ErrAlreadyLiked):
		h.writeError(w, http.StatusBadRequest, "ALREADY_LIKED", "post is already liked")
	case errors.Is(err, service.ErrNotLiked):
		h.writeError(w, http.StatusBadRequest, "NOT_LIKED", "post is not liked")
	case errors.Is(err, service.ErrAlreadyBookmarked):
		h.writeError(w, http.StatusBadRequest, "ALREADY_BOOKMARKED", "post is already bookmarked")
	case errors.Is(err, service.ErrNotBookmarked):
		h.writeError(w, http.StatusBadRequest, "NOT_BOOKMARKED", "post is not bookmarked")
	case errors.Is(err, service.ErrInvalidStatus):
		h.writeError(w, http.StatusBadRequest, "INVALID_STATUS", "unknown status value")
	case errors.Is(err, service.ErrInvalidTransition):
		h.writeError(w, http.StatusBadRequest, "INVALID_TRANSITION", "status change is not allowed")
	case errors.Is(err, service.ErrParentMismatch):
		h.writeError(w, http.StatusBadRequest, "PARENT_MISMATCH", "parent comment belongs to a different post")
	default:
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
