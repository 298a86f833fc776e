package main

import (
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"sync"
	"wasimoff/stopwatch/metrics"
	"wasimoff/stopwatch/stopwatch"
	"wasimoff/stopwatch/workload"

	"github.com/google/uuid"
)

func main() {
	banner()

	// use configuration from environment variables
	conf, err := GetConfiguration()
	if err != nil {
		log.Fatalf("%s", err)
	}
	log.Printf("%#v", &conf)

	// the most recent recorder, read by the elapsed gauge
	var mu sync.Mutex
	var current *stopwatch.Recorder

	for i := 0; i < conf.Rounds; i++ {
		rec := run(conf)
		roundLogger(uuid.New()).Printf("Round %d:\n%s", i, rec.Report())
		if conf.Metrics {
			metrics.Observe(rec.Intervals())
		}
		mu.Lock()
		current = rec
		mu.Unlock()
	}

	if !conf.Metrics {
		return
	}

	mux := http.NewServeMux()

	// maybe register the pprof handler
	if conf.Debug {
		pprofHandler(mux)
		log.Printf("DEBUG: PID is %d", os.Getpid())
		log.Printf("DEBUG: pprof profiles at %s/debug/pprof/", conf.HttpListen)
	}

	// Prometheus metrics
	mux.Handle("/metrics", metrics.MetricsHandler(func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return current.Elapsed().Seconds()
	}))
	log.Printf("Prometheus metrics: %s%s", conf.HttpListen, "/metrics")

	if err := http.ListenAndServe(conf.HttpListen, mux); err != nil {
		log.Fatalf("oops: %s", err)
	}
}

// run times one round of the workload
func run(conf Configuration) *stopwatch.Recorder {
	rec := stopwatch.New()

	data := workload.Generate(conf.Size, conf.Seed)
	rec.Mark("generate")

	for i := 0; i < conf.Iterations; i++ {
		workload.Sort(data)
	}
	rec.MarkSamples("sort", conf.Iterations)

	sorted := workload.Sort(data)
	for i := 0; i < conf.Iterations; i++ {
		workload.Checksum(sorted)
	}
	rec.MarkSamples("checksum", conf.Iterations)

	return rec
}

// roundLogger prefixes every message of one round with its run ID
func roundLogger(runID uuid.UUID) *log.Logger {
	return log.New(log.Writer(), "["+runID.String()+"] ", log.Flags()|log.Lmsgprefix)
}

// pprofHandler mimics what the net/http/pprof.init() does, but on a specified mux
func pprofHandler(mux *http.ServeMux) {
	// https://cs.opensource.google/go/go/+/refs/tags/go1.23.0:src/net/http/pprof/pprof.go;l=95
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
}
