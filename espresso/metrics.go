package espresso

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Values of the result label of callsTotal.
const (
	resultOK              = "ok"
	resultInvalidArgument = "invalid_argument"
	resultNoResult        = "no_result"
	resultBadResult       = "bad_result"
	resultMismatch        = "mismatch"
)

var (
	callsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gopherpla_espresso_minimize_total",
		Help: "Minimization requests by result",
	}, []string{"result"})

	callDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gopherpla_espresso_call_duration_seconds",
		Help:    "Duration of calls into the engine, lock wait excluded",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})

	lockWait = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gopherpla_espresso_lock_wait_seconds",
		Help:    "Time spent waiting for the engine lock",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})

	cubesIn = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gopherpla_espresso_cubes_in",
		Help:    "Number of cubes handed to the engine",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	cubesOut = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gopherpla_espresso_cubes_out",
		Help:    "Number of cubes returned by the engine",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	foreignCovers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gopherpla_espresso_foreign_covers",
		Help: "Covers owned by the engine and not released yet",
	})
)
