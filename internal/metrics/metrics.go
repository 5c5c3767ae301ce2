// Package metrics exposes Prometheus metrics of the encounter loop.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cull reasons.
const (
	CullDead       = "dead"
	CullOutOfRange = "out_of_range"
)

// Spawn failure reasons.
const (
	FailureInvalidModel = "invalid_model"
	FailureAborted      = "aborted"
	FailureOther        = "other"
)

// Collector bundles the encounter metrics. A nil *Collector is valid and
// records nothing.
type Collector struct {
	gatherer prometheus.Gatherer

	Encounters    prometheus.Counter
	Spawns        *prometheus.CounterVec
	Culls         *prometheus.CounterVec
	SpawnFailures *prometheus.CounterVec

	Engageable prometheus.Gauge
	Registered prometheus.Gauge
	Ceiling    prometheus.Gauge
}

// NewCollector registers the encounter metrics against reg, defaulting to the
// global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	encounters, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hitsquads_encounters_total",
		Help: "Total number of encounters started.",
	}), "hitsquads_encounters_total")
	if err != nil {
		return nil, err
	}

	spawns, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hitsquads_spawns_total",
		Help: "Total number of hostile agents spawned, labeled by spawn kind and tier.",
	}, []string{"kind", "tier"}), "hitsquads_spawns_total")
	if err != nil {
		return nil, err
	}

	culls, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hitsquads_culls_total",
		Help: "Total number of hostile agents culled, labeled by reason.",
	}, []string{"reason"}), "hitsquads_culls_total")
	if err != nil {
		return nil, err
	}

	failures, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hitsquads_spawn_failures_total",
		Help: "Total number of abandoned spawn attempts, labeled by reason.",
	}, []string{"reason"}), "hitsquads_spawn_failures_total")
	if err != nil {
		return nil, err
	}

	engageable, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hitsquads_engageable_agents",
		Help: "Hostile agents alive and within cull distance at the last tick.",
	}), "hitsquads_engageable_agents")
	if err != nil {
		return nil, err
	}
	registered, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hitsquads_registered_agents",
		Help: "Hostile agents tracked by the population controller.",
	}), "hitsquads_registered_agents")
	if err != nil {
		return nil, err
	}
	ceiling, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hitsquads_population_ceiling",
		Help: "Population ceiling of the running encounter, 0 when idle.",
	}), "hitsquads_population_ceiling")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:      gatherer,
		Encounters:    encounters,
		Spawns:        spawns,
		Culls:         culls,
		SpawnFailures: failures,
		Engageable:    engageable,
		Registered:    registered,
		Ceiling:       ceiling,
	}, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// EncounterStarted counts a new encounter and records its ceiling.
func (c *Collector) EncounterStarted(ceiling int) {
	if c == nil {
		return
	}
	c.Encounters.Inc()
	c.Ceiling.Set(float64(ceiling))
}

// EncounterStopped resets the population gauges.
func (c *Collector) EncounterStopped() {
	if c == nil {
		return
	}
	c.Ceiling.Set(0)
	c.Engageable.Set(0)
	c.Registered.Set(0)
}

// Spawned counts one spawned agent.
func (c *Collector) Spawned(kind, tier string) {
	if c == nil {
		return
	}
	c.Spawns.WithLabelValues(kind, tier).Inc()
}

// Culled counts n agents culled for reason.
func (c *Collector) Culled(reason string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.Culls.WithLabelValues(reason).Add(float64(n))
}

// SpawnFailed counts one abandoned spawn attempt.
func (c *Collector) SpawnFailed(reason string) {
	if c == nil {
		return
	}
	c.SpawnFailures.WithLabelValues(reason).Inc()
}

// SetPopulation records the per-tick population gauges.
func (c *Collector) SetPopulation(engageable, registered int) {
	if c == nil {
		return
	}
	c.Engageable.Set(float64(engageable))
	c.Registered.Set(float64(registered))
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
