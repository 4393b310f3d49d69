// Package httpadapter is the JSON API over the campaign, application and
// profile use cases.
package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"trial-match/internal/core/domain"
	"trial-match/internal/core/port"
	"trial-match/internal/metrics"
)

// Handler is the inbound HTTP adapter. It owns the chi router.
type Handler struct {
	campaigns    port.CampaignUseCase
	applications port.ApplicationUseCase
	profiles     port.ProfileUseCase
	auth         *Authenticator
	limiter      port.Limiter
	logger       *slog.Logger
	// maxUploadBytes bounds multipart image uploads.
	maxUploadBytes int64
	router         chi.Router
}

// Options carries the optional collaborators of a Handler.
type Options struct {
	// Limiter throttles applies; nil disables throttling.
	Limiter        port.Limiter
	MaxUploadBytes int64
}

func NewHandler(
	campaigns port.CampaignUseCase,
	applications port.ApplicationUseCase,
	profiles port.ProfileUseCase,
	auth *Authenticator,
	logger *slog.Logger,
	opts Options,
) *Handler {
	h := &Handler{
		campaigns:      campaigns,
		applications:   applications,
		profiles:       profiles,
		auth:           auth,
		limiter:        opts.Limiter,
		logger:         logger,
		maxUploadBytes: opts.MaxUploadBytes,
	}
	if h.maxUploadBytes <= 0 {
		h.maxUploadBytes = 5 << 20
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, h.logRequests, middleware.Recoverer, metrics.Instrument)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.optionalAuth)
			r.Get("/campaigns", h.handleListCampaigns)
			r.Get("/campaigns/{id}", h.handleCampaignDetail)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Post("/advertisers", h.handleRegisterAdvertiser)
			r.Get("/advertisers/me", h.handleAdvertiserMe)
			r.Post("/influencers", h.handleRegisterInfluencer)
			r.Get("/influencers/me", h.handleInfluencerMe)

			r.Group(func(r chi.Router) {
				r.Use(h.requireAdvertiser)
				r.Get("/advertisers/me/campaigns", h.handleMyCampaigns)
				r.Post("/campaigns", h.handleCreateCampaign)
				r.Post("/campaigns/images", h.handleUploadImage)
				r.Post("/campaigns/{id}/close", h.handleCloseCampaign)
				r.Post("/campaigns/{id}/selection", h.handleSelectInfluencers)
				r.Get("/campaigns/{id}/applications", h.handleListApplicants)
			})

			r.Group(func(r chi.Router) {
				r.Use(h.requireInfluencer)
				r.Get("/influencers/me/applications", h.handleMyApplications)
				r.Post("/campaigns/{id}/applications", h.handleApply)
			})
		})
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

type advertiserKey struct{}
type influencerKey struct{}

func advertiserFrom(ctx context.Context) *domain.Advertiser {
	a, _ := ctx.Value(advertiserKey{}).(*domain.Advertiser)
	return a
}

func influencerFrom(ctx context.Context) *domain.Influencer {
	i, _ := ctx.Value(influencerKey{}).(*domain.Influencer)
	return i
}

// requireAdvertiser resolves the caller's advertiser profile; callers without
// one are forbidden.
func (h *Handler) requireAdvertiser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := IdentityFrom(r.Context())
		a, err := h.profiles.AdvertiserByUser(r.Context(), id.UserID)
		if errors.Is(err, domain.ErrAdvertiserNotFound) {
			err = domain.ErrForbiddenRole
		}
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), advertiserKey{}, a)))
	})
}

func (h *Handler) requireInfluencer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := IdentityFrom(r.Context())
		i, err := h.profiles.InfluencerByUser(r.Context(), id.UserID)
		if errors.Is(err, domain.ErrInfluencerNotFound) {
			err = domain.ErrInfluencerNotRegistered
		}
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), influencerKey{}, i)))
	})
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
