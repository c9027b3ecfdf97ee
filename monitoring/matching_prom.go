// Copyright 2026 l3montree GmbH
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var VendorMatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "gapguard_vendor_match_duration_seconds",
	Help:    "Duration of full vendor match computations in seconds",
	Buckets: prometheus.DefBuckets,
})

var StrategyMatrixDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "gapguard_strategy_matrix_duration_seconds",
	Help:    "Duration of strategy matrix computations in seconds",
	Buckets: prometheus.DefBuckets,
})

var CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gapguard_engine_cache_hits_total",
	Help: "Engine cache hits by cache name",
}, []string{"cache"})

var CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gapguard_engine_cache_misses_total",
	Help: "Engine cache misses by cache name",
}, []string{"cache"})

var VendorsScored = promauto.NewCounter(prometheus.CounterOpts{
	Name: "gapguard_vendors_scored_total",
	Help: "Number of per-vendor score computations",
})
