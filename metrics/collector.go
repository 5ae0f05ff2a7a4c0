// Package metrics exposes frame loop telemetry as prometheus collectors
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/galaxy/engine"
	"github.com/lixenwraith/galaxy/physics"
)

// Collector bundles the scheduler metrics and implements engine.Observer
type Collector struct {
	gatherer prometheus.Gatherer

	Frames          prometheus.Counter
	IntegratorTicks prometheus.Counter
	DriftTicks      prometheus.Counter
	Corrections     prometheus.Counter
	WallHits        prometheus.Counter
	SolverPasses    prometheus.Histogram

	Alpha   prometheus.Gauge
	Settled prometheus.Gauge
	Armed   prometheus.Gauge
	Parks   *prometheus.CounterVec
}

var _ engine.Observer = (*Collector)(nil)

// NewCollector registers galaxy metrics against reg, defaulting to the global registry when nil
// Re-registering against the same registry reuses the existing collectors
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{gatherer: gatherer}
	var err error

	counters := []struct {
		dst  *prometheus.Counter
		name string
		help string
	}{
		{&c.Frames, "galaxy_frames_total", "Frames rendered by the view loop."},
		{&c.IntegratorTicks, "galaxy_integrator_ticks_total", "Force integrator ticks while the layout was unsettled."},
		{&c.DriftTicks, "galaxy_drift_ticks_total", "Orbital drift solver ticks."},
		{&c.Corrections, "galaxy_drift_overlap_corrections_total", "Pair overlaps corrected by drift constraint projection."},
		{&c.WallHits, "galaxy_drift_wall_hits_total", "Drift wall reflections."},
	}
	for _, ct := range counters {
		*ct.dst, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Name: ct.name,
			Help: ct.help,
		}), ct.name)
		if err != nil {
			return nil, err
		}
	}

	c.SolverPasses, err = registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "galaxy_drift_solver_passes",
		Help:    "Projection passes per drift tick.",
		Buckets: []float64{1, 2, 3, 4, 6, 8, 12, 16, 32, 64},
	}), "galaxy_drift_solver_passes")
	if err != nil {
		return nil, err
	}

	gauges := []struct {
		dst  *prometheus.Gauge
		name string
		help string
	}{
		{&c.Alpha, "galaxy_alpha", "Current simulation energy."},
		{&c.Settled, "galaxy_settled", "1 when the force layout has settled."},
		{&c.Armed, "galaxy_loop_armed", "1 while the frame loop is ticking."},
	}
	for _, gg := range gauges {
		*gg.dst, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Name: gg.name,
			Help: gg.help,
		}), gg.name)
		if err != nil {
			return nil, err
		}
	}

	c.Parks, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "galaxy_loop_parks_total",
		Help: "Frame loop parks, labeled by reason.",
	}, []string{"reason"}), "galaxy_loop_parks_total")
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Handler exposes a ready-to-use /metrics handler
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func (c *Collector) FrameRendered() { c.Frames.Inc() }

func (c *Collector) IntegratorTick(alpha float64) {
	c.IntegratorTicks.Inc()
	c.Alpha.Set(alpha)
}

func (c *Collector) DriftTick(stats physics.DriftStats) {
	c.DriftTicks.Inc()
	c.Corrections.Add(float64(stats.Corrections))
	c.WallHits.Add(float64(stats.WallHits))
	c.SolverPasses.Observe(float64(stats.Passes))
}

func (c *Collector) SettledChanged(settled bool) {
	c.Settled.Set(boolGauge(settled))
}

func (c *Collector) LoopParked(reason engine.ParkReason) {
	c.Armed.Set(0)
	c.Parks.WithLabelValues(string(reason)).Inc()
}

func (c *Collector) LoopArmed() { c.Armed.Set(1) }

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func registerCounter(reg prometheus.Registerer, ctr prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(ctr); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return ctr, nil
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

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerGauge(reg prometheus.Registerer, g prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return g, nil
}
