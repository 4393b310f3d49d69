package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Instrument)
	r.Get("/campaigns/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/campaigns/{id}", "418"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/campaigns/42", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/campaigns/{id}", "418"))
	assert.Equal(t, before+1, after)
}

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(applicationsDecided.WithLabelValues("REJECTED"))
	SelectionDecided(2, 1)
	assert.Equal(t, before+1, testutil.ToFloat64(applicationsDecided.WithLabelValues("REJECTED")))

	closed := testutil.ToFloat64(campaignTransitions.WithLabelValues("CLOSED", "schedule"))
	CampaignTransition("CLOSED", "schedule", 0)
	CampaignTransition("CLOSED", "schedule", 3)
	assert.Equal(t, closed+3, testutil.ToFloat64(campaignTransitions.WithLabelValues("CLOSED", "schedule")))
}
