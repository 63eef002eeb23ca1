package postdetail

import (
	"net/http"

	"timeline-service/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) error {
	fid, err := httpx.FamilyFromRequest(r)
	if err != nil {
		return err
	}
	postID := r.PathValue("post_id")

	opts := Opts{
		CommentLimit:  httpx.QueryInt(r, "commentLimit", 20),
		CommentOffset: httpx.QueryInt(r, "commentOffset", 0),
		CookedLimit:   httpx.QueryInt(r, "cookedLimit", 5),
		CookedOffset:  httpx.QueryInt(r, "cookedOffset", 0),
	}

	detail, err := h.svc.Detail(r.Context(), postID, fid, opts)
	if err != nil {
		return err
	}
	if detail == nil {
		return httpx.ErrNotFound
	}
	httpx.WriteJSON(w, map[string]any{"post": detail}, http.StatusOK)
	return nil
}
