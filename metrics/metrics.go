// Package metrics provides Prometheus metrics for discussion ingestion.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "discussion"

var (
	// FetchTotal counts fetch-and-store invocations by outcome.
	FetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Total number of discussion fetch invocations",
		},
		[]string{"platform", "status"},
	)

	// RetryableFailuresTotal counts failed invocations the caller should retry.
	RetryableFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_retryable_failures_total",
			Help:      "Total number of failed fetches reported as retryable",
		},
		[]string{"platform"},
	)

	// FetchDuration measures the fetcher part of an invocation.
	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Duration of discussion fetches in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"platform"},
	)

	// CommentsFetched observes how many comments a fetch produced.
	CommentsFetched = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "comments_fetched",
			Help:      "Distribution of comments fetched per invocation",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 200, 500, 1000},
		},
		[]string{"platform"},
	)

	// MetadataWritesTotal counts denormalizer runs by whether a save happened.
	MetadataWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "metadata_writes_total",
			Help:      "Content item metadata denormalization results",
		},
		[]string{"result"},
	)
)

// RecordFetch records one finished invocation.
func RecordFetch(platform, status string, retryable bool, duration time.Duration, comments int) {
	FetchTotal.WithLabelValues(platform, status).Inc()
	FetchDuration.WithLabelValues(platform).Observe(duration.Seconds())
	CommentsFetched.WithLabelValues(platform).Observe(float64(comments))
	if retryable {
		RetryableFailuresTotal.WithLabelValues(platform).Inc()
	}
}

// RecordMetadataWrite records whether the denormalizer saved anything.
func RecordMetadataWrite(written bool) {
	if written {
		MetadataWritesTotal.WithLabelValues("written").Inc()
		return
	}
	MetadataWritesTotal.WithLabelValues("unchanged").Inc()
}
