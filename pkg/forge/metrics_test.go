package forge

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithInstrumentation_CountsRequests(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `[]`)

	reg := prometheus.NewRegistry()
	c := NewClient("token",
		WithBaseURL(srv.URL),
		WithHTTPClient(&http.Client{}),
		WithInstrumentation(reg),
	)

	_, err := c.Servers.List(context.Background())
	require.NoError(t, err)
	_, err = c.Servers.List(context.Background())
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() != nil {
				byName[mf.GetName()] += m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, float64(2), byName["forge_client_requests_total"])
}
