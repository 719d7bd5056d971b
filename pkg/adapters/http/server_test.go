package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/xrinput"
	"github.com/aretw0/xrinput/internal/testutils"
	"github.com/aretw0/xrinput/pkg/adapters/memory"
	"github.com/aretw0/xrinput/pkg/domain"
	"github.com/aretw0/xrinput/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (http.Handler, *testutils.Recorder) {
	t.Helper()
	rec := &testutils.Recorder{}
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	sess, err := xrinput.Start(context.Background(), memory.NewHost(), rec,
		xrinput.WithHooks(m.Hooks()),
		xrinput.WithMouseMovement(true),
		xrinput.WithDisabledProfiles("simple"),
	)
	require.NoError(t, err)
	return NewHandler(sess, reg), rec
}

func post(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, EventResponse) {
	t.Helper()
	req := httptest.NewRequest("POST", "/events", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp EventResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	}
	return w, resp
}

func TestPostEvent_BimanualFlow(t *testing.T) {
	h, rec := newTestHandler(t)

	_, resp := post(t, h, `{"action":"trigger","hand":"left","kind":"PRESS","value":1}`)
	assert.Equal(t, domain.DispositionRunning, resp.Disposition)
	post(t, h, `{"action":"trigger","hand":"right","kind":"PRESS","value":1}`)

	_, resp = post(t, h, `{"action":"trigger","hand":"right","kind":"RELEASE","value":0}`)
	assert.Equal(t, domain.DispositionRunning, resp.Disposition)

	_, resp = post(t, h, `{"action":"trigger","hand":"left","kind":"RELEASE","value":0}`)
	assert.Equal(t, domain.DispositionFinished, resp.Disposition)

	assert.Equal(t, []domain.Phase{domain.PhaseUpdate, domain.PhaseUpdate, domain.PhaseComplete}, rec.Phases())
}

func TestPostEvent_MouseAndUnknown(t *testing.T) {
	h, _ := newTestHandler(t)

	_, resp := post(t, h, `{"mouse":{"x":3,"y":4}}`)
	assert.Equal(t, domain.DispositionPassThrough, resp.Disposition)

	_, resp = post(t, h, `{"action":"laser","hand":"left","kind":"press"}`)
	assert.Equal(t, domain.DispositionIgnored, resp.Disposition)
}

func TestPostEvent_BadRequests(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, body := range []string{`not json`, `{}`, `{"action":"trigger","hand":"head"}`} {
		w, _ := post(t, h, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestGetCatalog(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/catalog", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var views []ActionView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&views))
	require.Len(t, views, 17)
	assert.Equal(t, "controller_grip", views[0].Name)
	assert.Equal(t, domain.PoseGrip, views[0].Pose)
	assert.Equal(t, "dispatch.trigger_event_op", views[3].Handler)
	assert.True(t, views[3].Bimanual)
}

func TestGetBindings(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/bindings", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ActionSet string                 `json:"action_set"`
		Created   []domain.BindingRecord `json:"created"`
		Skipped   []domain.BindingRecord `json:"skipped"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "bl_controller_actionset", body.ActionSet)
	assert.NotEmpty(t, body.Created)
	for _, rec := range body.Skipped {
		assert.Equal(t, "simple", rec.Profile)
	}
}

func TestMetricsAndHealth(t *testing.T) {
	h, _ := newTestHandler(t)
	post(t, h, `{"action":"squeeze","hand":"left","kind":"press","value":1}`)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `xrinput_events_forwarded_total{phase="update",source="xr_action"} 1`)
	assert.Contains(t, w.Body.String(), "xrinput_bindings_skipped_total")

	req = httptest.NewRequest("GET", "/healthz", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
