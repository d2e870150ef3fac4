package metric

import(
	"context"
	"fmt"

	"github.com/skypies/flightplot/settings"
)

// A Registry is an ordered, keyed collection of metrics. Order is fixed at
// construction (plus any later Adds) and is the order axes stack in.
type Registry struct {
	metrics []*Metric
	byKey   map[string]*Metric
}

func NewRegistry(defs ...Def) (*Registry, error) {
	r := &Registry{byKey: map[string]*Metric{}}
	for _,def := range defs {
		if _,err := r.Add(def); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Values returns a fresh registry holding the plottable value catalog.
func Values() *Registry {
	r,err := NewRegistry(ValueDefs()...)
	if err != nil { panic(err) } // the compiled-in catalog has unique keys
	return r
}

// XAxes returns a fresh registry of the quantities usable as the shared axis.
func XAxes() *Registry {
	r,err := NewRegistry(XAxisDefs()...)
	if err != nil { panic(err) }
	return r
}

// Add appends a new metric; keys must be non-empty and unique.
func (r *Registry)Add(def Def) (*Metric, error) {
	if def.Key == "" {
		return nil, fmt.Errorf("metric %q: empty key", def.Name)
	}
	if def.Value == nil {
		return nil, fmt.Errorf("metric %q: no value func", def.Key)
	}
	if _,exists := r.byKey[def.Key]; exists {
		return nil, fmt.Errorf("metric %q: duplicate key", def.Key)
	}
	m := New(def)
	r.metrics = append(r.metrics, m)
	r.byKey[def.Key] = m
	return m, nil
}

func (r *Registry)Len() int { return len(r.metrics) }

func (r *Registry)Lookup(key string) (*Metric, bool) {
	m,exists := r.byKey[key]
	return m, exists
}

// All returns every metric, in registry order.
func (r *Registry)All() []*Metric {
	return append([]*Metric(nil), r.metrics...)
}

// Visible returns the visible metrics, in registry order.
func (r *Registry)Visible() []*Metric {
	out := []*Metric{}
	for _,m := range r.metrics {
		if m.Visible() { out = append(out, m) }
	}
	return out
}

// {{{ r.Apply, r.Snapshot

// Apply sets each metric from its record in doc, field by field; anything
// absent reverts to the compiled-in default.
func (r *Registry)Apply(doc settings.Document) {
	for _,m := range r.metrics {
		m.Reset()
		rec,exists := doc[settings.Key(m.Key())]
		if !exists { continue }
		if rec.Visible != nil { m.SetVisible(*rec.Visible) }
		if rec.Color != nil   { m.SetColor(*rec.Color) }
	}
}

// Snapshot records the current state of every metric into doc (which may be
// nil), leaving entries that belong to no metric here untouched.
func (r *Registry)Snapshot(doc settings.Document) settings.Document {
	out := doc.Clone()
	for _,m := range r.metrics {
		out[settings.Key(m.Key())] = settings.Record{
			Visible: settings.Bool(m.Visible()),
			Color:   settings.Color(m.Color()),
		}
	}
	return out
}

// }}}
// {{{ r.LoadSettings, r.SaveSettings

// LoadSettings applies the stored document. If the store fails, every metric is
// reset to its default and the error is returned.
func (r *Registry)LoadSettings(ctx context.Context, s settings.Store) error {
	doc,err := s.Load(ctx)
	if err != nil {
		r.Apply(settings.Document{})
		return fmt.Errorf("metric: load settings: %w", err)
	}
	r.Apply(doc)
	return nil
}

// SaveSettings merges the current state into whatever the store holds, so
// records owned by other registries survive. If the store can't be read (a
// corrupt file, say) it is overwritten with this registry's records alone, so
// saving also repairs it.
func (r *Registry)SaveSettings(ctx context.Context, s settings.Store) error {
	doc,err := s.Load(ctx)
	if err != nil {
		doc = nil
	}
	if err := s.Save(ctx, r.Snapshot(doc)); err != nil {
		return fmt.Errorf("metric: save settings: %w", err)
	}
	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
