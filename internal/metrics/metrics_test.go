package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(ledgerOps.WithLabelValues("reserve", "full"))
	IncLedgerOp("reserve", "full")
	assert.Equal(t, before+1, testutil.ToFloat64(ledgerOps.WithLabelValues("reserve", "full")))

	rev := testutil.ToFloat64(slipRevenue)
	AddSlipRevenue(100)
	AddSlipRevenue(0)
	AddSlipRevenue(-5)
	assert.Equal(t, rev+100, testutil.ToFloat64(slipRevenue))
}

func TestRegister_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestHandler_ExposesNamespace(t *testing.T) {
	Register()
	IncBookingCreated()
	ObserveHTTP(http.MethodGet, "/health", "200", 5*time.Millisecond)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "parkspot_bookings_created_total"))
	assert.True(t, strings.Contains(w.Body.String(), "parkspot_http_request_duration_seconds"))
}
