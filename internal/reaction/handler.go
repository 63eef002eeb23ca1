package reaction

import (
	"net/http"

	"timeline-service/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) error {
	fid, err := httpx.FamilyFromRequest(r)
	if err != nil {
		return err
	}
	uid, err := httpx.UserFromRequest(r)
	if err != nil {
		return err
	}
	in, err := httpx.Decode[ToggleReq](r)
	if err != nil {
		return err
	}
	reacted, err := h.svc.Toggle(r.Context(), fid, uid, in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]bool{"reacted": reacted}, http.StatusOK)
	return nil
}
