package post

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
	if in.Title == "" {
		return fmt.Errorf("title is required")
	}
	in.FamilySpaceID = fid
	in.AuthorID = uid

	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"post": p}, http.StatusCreated)
	return nil
}

func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) error {
	fid, err := httpx.FamilyFromRequest(r)
	if err != nil {
		return err
	}
	uid, err := httpx.UserFromRequest(r)
	if err != nil {
		return err
	}

	in, err := httpx.Decode[EditReq](r)
	if err != nil {
		return err
	}
	in.EditorID = uid

	p, err := h.svc.Edit(r.Context(), r.PathValue("post_id"), fid, in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"post": p}, http.StatusOK)
	return nil
}
