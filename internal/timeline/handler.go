package timeline

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"timeline-service/internal/shared/httpx"
)

var pagesServed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "timeline_pages_served_total",
	Help: "Timeline pages assembled and returned.",
})

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) error {
	fid, err := httpx.FamilyFromRequest(r)
	if err != nil {
		return err
	}
	limit := httpx.QueryInt(r, "limit", defaultLimit)
	offset := httpx.QueryInt(r, "offset", 0)

	page, err := h.svc.Get(r.Context(), fid, limit, offset)
	if err != nil {
		return err
	}
	pagesServed.Inc()
	httpx.WriteJSON(w, page, http.StatusOK)
	return nil
}
