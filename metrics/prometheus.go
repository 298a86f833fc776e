package metrics

import (
	"math"
	"net/http"
	"wasimoff/stopwatch/stopwatch"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// duration of each interval between two marks
var IntervalSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "stopwatch_interval_seconds",
	Help:    "Elapsed time between two consecutive marks.",
	Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14),
}, []string{"from", "to"})

// interval duration divided by the annotated sample count
var SampleSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "stopwatch_sample_seconds",
	Help:    "Elapsed time between two consecutive marks per annotated sample.",
	Buckets: prometheus.ExponentialBuckets(1e-9, 4, 18),
}, []string{"from", "to"})

// Observe records the intervals of a trace in the histograms. Per-sample
// values that are not finite (zero sample counts) are skipped.
func Observe(intervals []stopwatch.Interval) {
	for _, iv := range intervals {
		IntervalSeconds.WithLabelValues(iv.From, iv.To).Observe(iv.Seconds())
		for _, n := range iv.Samples {
			v := iv.PerSample(n)
			if math.IsInf(v, 0) || math.IsNaN(v) {
				continue
			}
			SampleSeconds.WithLabelValues(iv.From, iv.To).Observe(v)
		}
	}
}

func MetricsHandler(elapsedFunc func() float64) http.Handler {

	// time since the start of the current recorder
	elapsed := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "stopwatch_elapsed_seconds",
		Help: "Total time since the start of the current trace.",
	}, elapsedFunc)
	prometheus.MustRegister(elapsed)

	prometheus.MustRegister(IntervalSeconds)
	prometheus.MustRegister(SampleSeconds)

	return promhttp.Handler()
}
