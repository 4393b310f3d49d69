package httpadapter

import (
	"net/http"
	"strconv"

	"trial-match/internal/core/port"
)

var errTooManyApplies = &requestError{
	status: http.StatusTooManyRequests,
	code:   "rate_limited",
	msg:    "too many applications, try again later",
}

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	inf := influencerFrom(r.Context())
	if h.limiter != nil && !h.limiter.Allow(r.Context(), strconv.FormatInt(inf.ID, 10)) {
		h.writeError(w, r, errTooManyApplies)
		return
	}
	var req applyRequest
	if err = decodeOptional(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	app, err := h.applications.Apply(r.Context(), port.ApplyInput{
		CampaignID:   id,
		InfluencerID: inf.ID,
		Reason:       req.Reason,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, app)
}

func (h *Handler) handleMyApplications(w http.ResponseWriter, r *http.Request) {
	items, err := h.applications.ListApplicationsForInfluencer(r.Context(), influencerFrom(r.Context()).ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
