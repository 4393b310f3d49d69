package httpadapter

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"trial-match/internal/core/port"
)

// handleListCampaigns serves GET /campaigns?page=&per_page=&sort=latest|deadline|popular.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	perPage, err := queryInt(r, "per_page", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	sort := port.ParseSortMode(r.URL.Query().Get("sort"))

	res, err := h.campaigns.ListRecruiting(r.Context(), page, perPage, sort)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleCampaignDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var viewer *uuid.UUID
	if ident, ok := IdentityFrom(r.Context()); ok {
		viewer = &ident.UserID
	}
	res, err := h.campaigns.CampaignDetail(r.Context(), id, viewer)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleMyCampaigns(w http.ResponseWriter, r *http.Request) {
	items, err := h.campaigns.ListByAdvertiser(r.Context(), advertiserFrom(r.Context()).ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.campaigns.CreateCampaign(r.Context(), port.CreateCampaignInput{
		AdvertiserID: advertiserFrom(r.Context()).ID,
		Title:        req.Title,
		Description:  req.Description,
		Quota:        req.Quota,
		StartDate:    start,
		EndDate:      end,
		Benefits:     req.Benefits,
		Conditions:   req.Conditions,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

// handleUploadImage accepts a multipart form with an "image" file part.
func (h *Handler) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+(64<<10))
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, &requestError{status: http.StatusRequestEntityTooLarge, code: "image_too_large", msg: "image is too large"})
			return
		}
		h.writeError(w, r, badRequest("invalid_form", "invalid multipart form: %v", err))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		h.writeError(w, r, badRequest("invalid_image", "image file is required"))
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	url, err := h.campaigns.UploadCampaignImage(r.Context(), port.UploadImageInput{
		AdvertiserID: advertiserFrom(r.Context()).ID,
		FileName:     header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Data:         data,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]string{"image_url": url})
}

func (h *Handler) handleCloseCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.campaigns.CloseEarly(r.Context(), id, advertiserFrom(r.Context()).ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleSelectInfluencers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req selectionRequest
	if err = decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.campaigns.SelectInfluencers(r.Context(), id, advertiserFrom(r.Context()).ID, *req.ApplicationIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleListApplicants(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	items, err := h.applications.ListApplicantsForCampaign(r.Context(), id, advertiserFrom(r.Context()).ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
