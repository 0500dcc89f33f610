package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andre121314115/arcos-globos/internal/core/ports"
)

func TestRecorder_DocumentHandled(t *testing.T) {
	c := DocumentsTotal.WithLabelValues("users", ports.ResultFailed)
	before := testutil.ToFloat64(c)

	NewRecorder().DocumentHandled("users", ports.ResultFailed)

	assert.Equal(t, 1.0, testutil.ToFloat64(c)-before)
}

func TestRecorder_RunFinished(t *testing.T) {
	before := testutil.CollectAndCount(RunDuration)

	NewRecorder().RunFinished("recorder-test", 250*time.Millisecond)

	assert.Equal(t, before+1, testutil.CollectAndCount(RunDuration))
}

func TestPush_SendsToGateway(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, Push(context.Background(), srv.URL))
	assert.Equal(t, "/metrics/job/"+jobName, path)
}

func TestPush_GatewayErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	assert.ErrorContains(t, Push(context.Background(), srv.URL), "push metrics")
}
