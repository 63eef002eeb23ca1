package comment

import (
	"fmt"
	"net/http"

	"timeline-service/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	fid, err := httpx.FamilyFromRequest(r)
	if err != nil {
		return err
	}
	uid, err := httpx.UserFromRequest(r)
	if err != nil {
		return err
	}

	in, err := httpx.Decode[CreateReq](r)
	if err != nil {
		return err
	}
	if in.Text == "" {
		return fmt.Errorf("text is required")
	}
	in.PostID = r.PathValue("post_id")
	in.AuthorID = uid

	c, err := h.svc.Create(r.Context(), fid, in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"comment": c}, http.StatusCreated)
	return nil
}

func (h *Handler) ListByPost(w http.ResponseWriter, r *http.Request) error {
	fid, err := httpx.FamilyFromRequest(r)
	if err != nil {
		return err
	}
	postID := r.PathValue("post_id")
	limit := httpx.QueryInt(r, "limit", defaultLimit)
	offset := httpx.QueryInt(r, "offset", 0)

	page, err := h.svc.Page(r.Context(), postID, fid, limit, offset)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, page, http.StatusOK)
	return nil
}
