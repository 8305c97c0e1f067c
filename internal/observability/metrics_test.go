package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRequestCountsByStatusClass(t *testing.T) {
	counter := httpRequests.WithLabelValues("GET", "/metrics-test", "4xx")
	before := testutil.ToFloat64(counter)

	RecordRequest("GET", "/metrics-test", 404, 3*time.Millisecond)
	RecordRequest("GET", "/metrics-test", 418, time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestObserveStoreQuerySplitsOutcome(t *testing.T) {
	ObserveStoreQuery("metrics_test", time.Now(), nil)
	ObserveStoreQuery("metrics_test", time.Now(), errors.New("down"))

	assert.GreaterOrEqual(t, testutil.CollectAndCount(storeDuration), 2)
}

func TestStatusLabel(t *testing.T) {
	cases := map[int]string{200: "2xx", 201: "2xx", 304: "3xx", 404: "4xx", 500: "5xx", 503: "5xx"}
	for status, want := range cases {
		assert.Equal(t, want, statusLabel(status), "status %d", status)
	}
}
