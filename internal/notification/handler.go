package notification

import (
	"net/http"

	"timeline-service/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromRequest(r)
	if err != nil {
		return err
	}
	limit := httpx.QueryInt(r, "limit", 50)
	items, err := h.svc.List(r.Context(), uid, int64(limit))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"notifications": items}, http.StatusOK)
	return nil
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromRequest(r)
	if err != nil {
		return err
	}
	notifID := r.PathValue("notif_id")
	if err := h.svc.MarkRead(r.Context(), uid, notifID); err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]string{"message": "marked read"}, http.StatusOK)
	return nil
}
