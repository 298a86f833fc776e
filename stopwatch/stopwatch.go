package stopwatch

// This package is used to measure the duration of consecutive steps in a
// program, optionally averaged over a number of samples per step.

import (
	"strconv"
	"strings"
	"time"
)

// StartLabel is the label of the first measurement in every Recorder.
const StartLabel = "start"

// Recorder holds an ordered list of labelled time points. It is meant to be
// owned by a single goroutine; wrap it in a mutex if you need to share it.
// The zero value is usable and takes its "start" measurement on first use.
type Recorder struct {
	measurements []Measurement
	annotations  []SampleAnnotation
}

// Measurement is a labelled point in time. The Time carries the monotonic
// clock reading of time.Now(), so differences are immune to clock changes.
type Measurement struct {
	Label string
	Time  time.Time
}

// SampleAnnotation associates a sample count with every measurement that
// shares its label.
type SampleAnnotation struct {
	Label   string
	Samples int
}

// New returns a Recorder with the initial "start" measurement taken now.
func New() *Recorder {
	return &Recorder{
		measurements: []Measurement{{Label: StartLabel, Time: time.Now()}},
	}
}

// started takes the "start" measurement of a zero Recorder.
func (r *Recorder) started() {
	if len(r.measurements) == 0 {
		r.measurements = append(r.measurements, Measurement{Label: StartLabel, Time: time.Now()})
	}
}

// Mark appends a new measurement with the given label.
func (r *Recorder) Mark(label string) {
	r.started()
	r.measurements = append(r.measurements, Measurement{Label: label, Time: time.Now()})
}

// MarkSamples appends a measurement which spans multiple samples of
// something, for example iterations of a loop. The report then also prints
// the interval averaged over each sample. The count is not validated.
func (r *Recorder) MarkSamples(label string, samples int) {
	r.Mark(label)
	r.annotations = append(r.annotations, SampleAnnotation{Label: label, Samples: samples})
}

// Measurements returns a copy of all measurements in insertion order.
func (r *Recorder) Measurements() []Measurement {
	r.started()
	return append([]Measurement(nil), r.measurements...)
}

// Annotations returns a copy of all sample annotations in insertion order.
func (r *Recorder) Annotations() []SampleAnnotation {
	return append([]SampleAnnotation(nil), r.annotations...)
}

// Elapsed returns the time since the "start" measurement.
func (r *Recorder) Elapsed() time.Duration {
	r.started()
	return time.Since(r.measurements[0].Time)
}

// Interval is the span between two consecutive measurements.
type Interval struct {
	From, To string
	// Elapsed is truncated to whole microseconds.
	Elapsed time.Duration
	// Samples holds the count of every annotation labelled To.
	Samples []int
}

// Seconds returns the elapsed time in seconds with microsecond resolution.
func (i Interval) Seconds() float64 {
	return seconds(i.Elapsed)
}

// PerSample divides the elapsed seconds by n. A zero n gives an infinite
// value (or NaN for an empty interval) instead of panicking.
func (i Interval) PerSample(n int) float64 {
	return i.Seconds() / float64(n)
}

// Intervals computes the spans between all consecutive measurements.
func (r *Recorder) Intervals() []Interval {
	r.started()
	intervals := make([]Interval, 0, len(r.measurements)-1)
	for i := 1; i < len(r.measurements); i++ {
		previous, current := r.measurements[i-1], r.measurements[i]
		iv := Interval{
			From:    previous.Label,
			To:      current.Label,
			Elapsed: current.Time.Sub(previous.Time).Truncate(time.Microsecond),
		}
		// annotations match on the label of the later measurement
		for _, a := range r.annotations {
			if a.Label == current.Label {
				iv.Samples = append(iv.Samples, a.Samples)
			}
		}
		intervals = append(intervals, iv)
	}
	return intervals
}

// Report returns a human-readable trace with the total time from "start"
// until now, followed by one line per interval and one more line for each
// sample annotation matching the interval.
func (r *Recorder) Report() string {
	var b strings.Builder

	total := r.Elapsed().Truncate(time.Microsecond)
	b.WriteString("Total; " + StartLabel + " -> now: " + formatSeconds(seconds(total)) + "s\n")

	for _, iv := range r.Intervals() {
		prefix := iv.From + " -> " + iv.To
		b.WriteString(prefix + ": " + formatSeconds(iv.Seconds()) + "s\n")
		for _, n := range iv.Samples {
			b.WriteString(prefix + " per sample: " + formatSeconds(iv.PerSample(n)) + "s\n")
		}
	}

	return b.String()
}

func seconds(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1e6
}

// formatSeconds prints the shortest decimal that represents v exactly.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
