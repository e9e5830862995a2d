package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilRegistryIsSafe(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.ObserveScorerCall("ok", time.Millisecond)
		r.SignalPairWritten("PROXIMITY")
		r.Swipe("right", "MATCH")
		r.SetIndexedUsers(3)
		r.AddEvictions(1)
		r.SchedulerRun("perfect_match", "ok")
		r.UserEvaluation("failed")
		r.AddPurged(2)
		r.ObserveGRPC("/bloom.SignalService/CheckSignals", "OK", time.Millisecond)
	})
}

func TestCountersAccumulate(t *testing.T) {
	r := New()

	r.ObserveScorerCall("ok", 10*time.Millisecond)
	r.ObserveScorerCall("ok", 20*time.Millisecond)
	r.ObserveScorerCall("timeout", time.Second)
	r.Swipe("right", "MATCH")
	r.AddEvictions(4)
	r.AddEvictions(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.scorerCalls.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.scorerCalls.WithLabelValues("timeout")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.swipes.WithLabelValues("right", "MATCH")))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.indexEvictions))
}

func TestHandlerExposesNamespace(t *testing.T) {
	r := New()
	r.SetIndexedUsers(7)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "bloom_location_indexed_users 7"))
}
