// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// histogramCount extracts the sample count from a Prometheus histogram.
// testutil.ToFloat64 only handles counters and gauges.
func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m io_prometheus_client.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("write histogram: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordCacheLookup(t *testing.T) {
	before := testutil.ToFloat64(ContentCacheLookups.WithLabelValues("courses", "hit"))
	beforeMiss := testutil.ToFloat64(ContentCacheLookups.WithLabelValues("courses", "miss"))

	RecordCacheLookup("courses", true)
	RecordCacheLookup("courses", true)
	RecordCacheLookup("courses", false)

	if got := testutil.ToFloat64(ContentCacheLookups.WithLabelValues("courses", "hit")) - before; got != 2 {
		t.Errorf("hits delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(ContentCacheLookups.WithLabelValues("courses", "miss")) - beforeMiss; got != 1 {
		t.Errorf("misses delta = %v, want 1", got)
	}
}

func TestRecordFetch(t *testing.T) {
	before := testutil.ToFloat64(ContentFetchTotal.WithLabelValues("not_found"))
	beforeSamples := histogramCount(t, ContentFetchDuration)
	RecordFetch("not_found", 5*time.Millisecond)
	if got := testutil.ToFloat64(ContentFetchTotal.WithLabelValues("not_found")) - before; got != 1 {
		t.Errorf("not_found delta = %v, want 1", got)
	}
	if got := histogramCount(t, ContentFetchDuration) - beforeSamples; got != 1 {
		t.Errorf("fetch duration samples delta = %d, want 1", got)
	}
}

func TestRecordSearchAndSkipped(t *testing.T) {
	before := testutil.ToFloat64(SearchExecutions.WithLabelValues("cache_hit"))
	RecordSearch("cache_hit")
	if got := testutil.ToFloat64(SearchExecutions.WithLabelValues("cache_hit")) - before; got != 1 {
		t.Errorf("cache_hit delta = %v", got)
	}

	beforeSkip := testutil.ToFloat64(ContentSkipped.WithLabelValues("lesson", "not_found"))
	RecordSkipped("lesson", "not_found")
	if got := testutil.ToFloat64(ContentSkipped.WithLabelValues("lesson", "not_found")) - beforeSkip; got != 1 {
		t.Errorf("skipped delta = %v", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("gauge = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("gauge = %v, want %v", got, before)
	}
}
