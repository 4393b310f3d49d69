package httpadapter

import (
	"net/http"

	"trial-match/internal/core/port"
)

func (h *Handler) handleRegisterAdvertiser(w http.ResponseWriter, r *http.Request) {
	var req advertiserRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	birth, err := parseDate("birth_date", req.BirthDate)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ident, _ := IdentityFrom(r.Context())
	if _, err = h.profiles.EnsureUser(r.Context(), ident.UserID, ident.Email); err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.profiles.RegisterAdvertiser(r.Context(), port.RegisterAdvertiserInput{
		UserID:             ident.UserID,
		Name:               req.Name,
		BirthDate:          birth,
		Phone:              req.PhoneNumber,
		BusinessName:       req.BusinessName,
		Address:            req.Address,
		BusinessPhone:      req.BusinessPhone,
		BusinessNumber:     req.BusinessNumber,
		RepresentativeName: req.RepresentativeName,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) handleRegisterInfluencer(w http.ResponseWriter, r *http.Request) {
	var req influencerRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	birth, err := parseDate("birth_date", req.BirthDate)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ident, _ := IdentityFrom(r.Context())
	if _, err = h.profiles.EnsureUser(r.Context(), ident.UserID, ident.Email); err != nil {
		h.writeError(w, r, err)
		return
	}
	i, err := h.profiles.RegisterInfluencer(r.Context(), port.RegisterInfluencerInput{
		UserID:        ident.UserID,
		Name:          req.Name,
		BirthDate:     birth,
		Phone:         req.PhoneNumber,
		ChannelName:   req.ChannelName,
		ChannelURL:    req.ChannelURL,
		FollowerCount: req.FollowerCount,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, i)
}

func (h *Handler) handleAdvertiserMe(w http.ResponseWriter, r *http.Request) {
	ident, _ := IdentityFrom(r.Context())
	a, err := h.profiles.AdvertiserByUser(r.Context(), ident.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleInfluencerMe(w http.ResponseWriter, r *http.Request) {
	ident, _ := IdentityFrom(r.Context())
	i, err := h.profiles.InfluencerByUser(r.Context(), ident.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, i)
}
