package api

import (
	"net/http"
)

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notifier.List(r.Context(), CurrentUser(r.Context()).ID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, notifications)
}

// MarkNotificationRead flips one notification to read. Marking an
// already-read notification succeeds the same way.
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.notifier.MarkRead(r.Context(), id, CurrentUser(r.Context()).ID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeMessage(w, http.StatusOK, "notification marked read")
}

func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notifier.MarkAllRead(r.Context(), CurrentUser(r.Context()).ID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeMessage(w, http.StatusOK, "all notifications marked read")
}
