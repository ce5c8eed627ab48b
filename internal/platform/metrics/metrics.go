// Package metrics records per-run counters for the flight search and writes
// them in the Prometheus text format, for a node-exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns a private registry, so one run's numbers never mix with another's.
type Recorder struct {
	registry *prometheus.Registry

	FlightsIngested prometheus.Counter
	LegsIndexed     prometheus.Gauge
	Airports        prometheus.Gauge
	Itineraries     *prometheus.CounterVec
	PhaseDuration   *prometheus.HistogramVec
	RunsTotal       *prometheus.CounterVec
}

func NewRecorder(namespace string) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		FlightsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_ingested_total",
			Help:      "Flight records read from the catalog",
		}),
		LegsIndexed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "route_graph_legs",
			Help:      "Flights that passed the static filter and were indexed",
		}),
		Airports: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "route_graph_airports",
			Help:      "Airports touched by indexed flights",
		}),
		Itineraries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "itineraries_found_total",
			Help:      "Itineraries found, by direction",
		}, []string{"direction"}),
		PhaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Duration of pipeline phases",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10, 30, 60},
		}, []string{"phase"}),
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Search runs, by outcome",
		}, []string{"status"}),
	}

	r.registry.MustRegister(
		r.FlightsIngested,
		r.LegsIndexed,
		r.Airports,
		r.Itineraries,
		r.PhaseDuration,
		r.RunsTotal,
	)

	return r
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) ObserveIngest(flights int, dur time.Duration) {
	r.FlightsIngested.Add(float64(flights))
	r.PhaseDuration.WithLabelValues("ingest").Observe(dur.Seconds())
}

func (r *Recorder) ObserveGraph(legs, airports int) {
	r.LegsIndexed.Set(float64(legs))
	r.Airports.Set(float64(airports))
}

func (r *Recorder) ObserveSearch(outward, ret int, dur time.Duration) {
	r.Itineraries.WithLabelValues("outward").Add(float64(outward))
	r.Itineraries.WithLabelValues("return").Add(float64(ret))
	r.PhaseDuration.WithLabelValues("search").Observe(dur.Seconds())
}

func (r *Recorder) ObserveRun(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.RunsTotal.WithLabelValues(status).Inc()
}

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile %q: %w", path, err)
	}
	return nil
}
