package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(packagesIssued.WithLabelValues("screening", "true"))
	RecordPackage("screening", true)
	assert.Equal(t, before+1, testutil.ToFloat64(packagesIssued.WithLabelValues("screening", "true")))

	RecordRevert("screenParticipantProxy", "paused")
	RecordRevert("screenParticipantProxy", "paused")
	assert.GreaterOrEqual(t, testutil.ToFloat64(reverts.WithLabelValues("screenParticipantProxy", "paused")), 2.0)

	RecordRequest("POST", "/api/v1/screenings", 201)
	assert.GreaterOrEqual(t, testutil.ToFloat64(requestsTotal.WithLabelValues("POST", "/api/v1/screenings", "201")), 1.0)
}
