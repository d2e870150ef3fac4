// Package observability counts what the viewer is asked to do, in Prometheus
// metrics: intents by kind, repaints, range recompute latency and the number
// of visible axes.
package observability

import(
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const(
	IntentsName   = "flightplot_intents_total"
	RepaintsName  = "flightplot_repaints_total"
	RecomputeName = "flightplot_range_recompute_seconds"
	AxesName      = "flightplot_visible_axes"
)

// Collector bundles the viewer's metrics. A nil *Collector is valid and
// records nothing. Safe for concurrent use.
type Collector struct {
	gatherer prometheus.Gatherer

	Intents   *prometheus.CounterVec
	Repaints  prometheus.Counter
	Recompute prometheus.Histogram
	Axes      prometheus.Gauge
}

// NewCollector registers the metrics against reg, defaulting to the global
// registry when nil. Registering twice against one registry hands back the
// metrics already there.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g,ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	intents,err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: IntentsName,
		Help: "Intents emitted by the interaction controller, by kind.",
	}, []string{"kind"}), IntentsName)
	if err != nil { return nil, err }

	repaints,err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: RepaintsName,
		Help: "Repaint requests.",
	}), RepaintsName)
	if err != nil { return nil, err }

	recompute,err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    RecomputeName,
		Help:    "Time taken to re-range the visible axes over the window.",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	}), RecomputeName)
	if err != nil { return nil, err }

	axes,err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: AxesName,
		Help: "Number of visible value axes.",
	}), AxesName)
	if err != nil { return nil, err }

	return &Collector{
		gatherer:  gatherer,
		Intents:   intents,
		Repaints:  repaints,
		Recompute: recompute,
		Axes:      axes,
	}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T, name string) (T, error) {
	if err := reg.Register(c); err != nil {
		if are,ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing,ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			return c, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return c, err
	}
	return c, nil
}

// {{{ c.Intent, Repaint, ObserveRecompute, SetAxes

func (c *Collector)Intent(kind string) {
	if c == nil { return }
	c.Intents.WithLabelValues(kind).Inc()
}

func (c *Collector)Repaint() {
	if c == nil { return }
	c.Repaints.Inc()
}

func (c *Collector)ObserveRecompute(d time.Duration) {
	if c == nil { return }
	c.Recompute.Observe(d.Seconds())
}

func (c *Collector)SetAxes(n int) {
	if c == nil { return }
	c.Axes.Set(float64(n))
}

// }}}
// {{{ c.Gatherer, c.Summary

func (c *Collector)Gatherer() prometheus.Gatherer {
	if c == nil || c.gatherer == nil { return prometheus.DefaultGatherer }
	return c.gatherer
}

// Summary is a point-in-time read of the collector's own metrics.
type Summary struct {
	Intents      map[string]float64
	Repaints     float64
	Recomputes   uint64
	RecomputeSum time.Duration
	Axes         float64
}

func (s Summary)String() string {
	kinds := []string{}
	for k := range s.Intents { kinds = append(kinds, k) }
	sort.Strings(kinds)

	str := ""
	for _,k := range kinds {
		str += fmt.Sprintf("%s:%.0f ", k, s.Intents[k])
	}
	return fmt.Sprintf("intents[%s] repaints:%.0f recomputes:%d (%s) axes:%.0f",
		str, s.Repaints, s.Recomputes, s.RecomputeSum, s.Axes)
}

// Summary gathers from the registry the collector was built against.
func (c *Collector)Summary() (Summary, error) {
	s := Summary{Intents: map[string]float64{}}
	mfs,err := c.Gatherer().Gather()
	if err != nil {
		return s, fmt.Errorf("gather metrics: %w", err)
	}

	for _,mf := range mfs {
		for _,m := range mf.GetMetric() {
			switch mf.GetName() {
			case IntentsName:
				s.Intents[labelValue(m, "kind")] = m.GetCounter().GetValue()
			case RepaintsName:
				s.Repaints = m.GetCounter().GetValue()
			case RecomputeName:
				s.Recomputes = m.GetHistogram().GetSampleCount()
				s.RecomputeSum = time.Duration(m.GetHistogram().GetSampleSum() * float64(time.Second))
			case AxesName:
				s.Axes = m.GetGauge().GetValue()
			}
		}
	}
	return s, nil
}

func labelValue(m *dto.Metric, name string) string {
	for _,lp := range m.GetLabel() {
		if lp.GetName() == name { return lp.GetValue() }
	}
	return ""
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
