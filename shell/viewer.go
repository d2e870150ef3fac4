// Package shell is the application side of the plot: it owns the track, the
// metric registry, the time window and the reference points, and carries out
// the intents that the interaction controller emits.
package shell

import(
	"context"
	"fmt"
	"image/color"
	"log"
	"time"

	fp "github.com/skypies/flightplot"
	"github.com/skypies/flightplot/axis"
	"github.com/skypies/flightplot/interact"
	"github.com/skypies/flightplot/metric"
	"github.com/skypies/flightplot/observability"
	"github.com/skypies/flightplot/settings"
)

// Viewer implements both interact.Shell and interact.Mapper. It must only be
// used from one goroutine.
type Viewer struct {
	Log           *log.Logger        // optional
	OnReadout     func(*Readout)     // optional; nil when the cursor mark is cleared
	OnMeasurement func(Measurement)  // optional
	OnRepaint     func()             // optional

	raw      fp.Track
	track    fp.Track
	baseline fp.Baseline
	aero     fp.Aero

	values   *metric.Registry
	xaxes    *metric.Registry
	x        *metric.Metric
	units    fp.Units
	tool     interact.Tool
	window   axis.Range
	rect     interact.Rect

	axes     *axis.Table
	scanner  *axis.Scanner
	ctrl     *interact.Controller
	metrics  *observability.Collector

	mark     *float64
}

// DefaultRect is the pixel rect until the host lays the plot out.
var DefaultRect = interact.Rect{Left: 0, Top: 0, Right: 800, Bottom: 600}

// New builds a viewer over a copy of the raw samples, time ordered. Zero starts
// at the first sample, and ground at the elevation of the last one. The
// collector may be nil.
func New(raw fp.Track, c *observability.Collector) *Viewer {
	t := make(fp.Track, len(raw))
	copy(t, raw)
	t.Sort()

	v := &Viewer{
		raw:     t,
		aero:    fp.DefaultAero(),
		values:  metric.Values(),
		xaxes:   metric.XAxes(),
		units:   fp.Metric,
		tool:    interact.Pan,
		rect:    DefaultRect,
		axes:    axis.NewTable(),
		metrics: c,
	}
	v.x,_ = v.xaxes.Lookup(metric.KeyTime)
	if len(t) > 0 {
		v.baseline = fp.Baseline{Zero: t[0].TimestampUTC, Ground: t[len(t)-1].HMSL}
	}
	v.ctrl = interact.NewController(v, v, v.rect)

	v.rederive()
	v.syncAxes()
	v.ZoomToExtent()
	return v
}

// {{{ accessors

func (v *Viewer)Track() fp.Track { return v.track }
func (v *Viewer)Values() *metric.Registry { return v.values }
func (v *Viewer)XAxes() *metric.Registry { return v.xaxes }
func (v *Viewer)XAxis() *metric.Metric { return v.x }
func (v *Viewer)Units() fp.Units { return v.units }
func (v *Viewer)Window() axis.Range { return v.window }
func (v *Viewer)Axes() *axis.Table { return v.axes }
func (v *Viewer)Baseline() fp.Baseline { return v.baseline }
func (v *Viewer)Controller() *interact.Controller { return v.ctrl }
func (v *Viewer)Collector() *observability.Collector { return v.metrics }
func (v *Viewer)Snapshot() interact.Snapshot { return v.ctrl.Snapshot() }

// Mark is the x coordinate of the cursor mark, if there is one.
func (v *Viewer)Mark() (float64, bool) {
	if v.mark == nil { return 0, false }
	return *v.mark, true
}

func (v *Viewer)SetTool(t interact.Tool) { v.tool = t }

// SetRect tells the viewer (and its controller) where the plotting rect is.
func (v *Viewer)SetRect(r interact.Rect) {
	v.rect = r
	v.ctrl.SetRect(r)
}
func (v *Viewer)Rect() interact.Rect { return v.rect }

func (v *Viewer)logf(format string, args ...interface{}) {
	if v.Log != nil { v.Log.Printf(format, args...) }
}

// }}}

// {{{ v.rederive, syncAxes, rerange

// rederive post-processes the raw samples against the current baseline.
func (v *Viewer)rederive() {
	v.track = v.raw.PostProcess(v.baseline, v.aero)
	v.scanner = axis.NewScanner(v.track, v.x, v.units)
}

func (v *Viewer)syncAxes() {
	v.axes.Sync(v.values.Visible())
	v.metrics.SetAxes(v.axes.Len())
}

// rerange re-ranges every visible axis over the window. Axes with nothing in
// the window keep their bounds.
func (v *Viewer)rerange() {
	tStart := time.Now()
	n := v.axes.Apply(v.scanner.Ranges(v.window, v.values.All()))
	v.metrics.ObserveRecompute(time.Since(tStart))

	if n < v.axes.Len() {
		v.logf("shell: %d of %d axes have no data in %s %s", v.axes.Len()-n, v.axes.Len(),
			v.x.Key(), v.window)
	}
}

// }}}
// {{{ v.SetWindow, ZoomToExtent

// SetWindow sets the x range and re-ranges the value axes to fit it. A window
// that is not finite, or has no width, is refused and the old one kept.
func (v *Viewer)SetWindow(r axis.Range) error {
	r = r.Ordered()
	if !r.Valid() {
		return fmt.Errorf("shell: invalid window %s", r)
	}
	v.window = r
	v.rerange()
	return nil
}

// ZoomToExtent sets the window to the whole track. An empty track leaves the
// window alone.
func (v *Viewer)ZoomToExtent() {
	r,ok := v.scanner.Extent()
	if !ok { return }
	v.SetWindow(r.Sanitized())
}

// }}}

// {{{ interact.Mapper

func (v *Viewer)PixelToCoord(px float64) float64 {
	return axis.Scale{Range: v.window, Low: v.rect.Left, High: v.rect.Right}.PixelToCoord(px)
}
func (v *Viewer)CoordToPixel(x float64) float64 {
	return axis.Scale{Range: v.window, Low: v.rect.Left, High: v.rect.Right}.CoordToPixel(x)
}
func (v *Viewer)Range() axis.Range { return v.window }

// }}}
// {{{ interact.Shell

func (v *Viewer)Tool() interact.Tool { return v.tool }

func (v *Viewer)OnWindowShift(delta float64) {
	v.metrics.Intent("shift")
	if err := v.SetWindow(v.window.Shift(delta)); err != nil {
		v.logf("shell: ignoring shift by %g: %v", delta, err)
	}
}

func (v *Viewer)OnWindowReplace(r axis.Range) {
	v.metrics.Intent("replace")
	if err := v.SetWindow(r); err != nil {
		v.logf("shell: ignoring window %s: %v", r, err)
	}
}

func (v *Viewer)OnMeasure(start, end float64) {
	v.metrics.Intent("measure")
	if v.OnMeasurement != nil {
		v.OnMeasurement(v.Measure(start, end))
	}
}

func (v *Viewer)OnCursorMark(x float64) {
	v.metrics.Intent("mark")
	v.mark = &x
	if v.OnReadout != nil {
		r := v.ReadoutAt(x)
		v.OnReadout(&r)
	}
}

func (v *Viewer)OnCursorClear() {
	v.metrics.Intent("clear")
	v.mark = nil
	if v.OnReadout != nil { v.OnReadout(nil) }
}

// clearMark drops a mark that no longer points at the same place, telling the
// readout hook.
func (v *Viewer)clearMark() {
	if v.mark == nil { return }
	v.mark = nil
	if v.OnReadout != nil { v.OnReadout(nil) }
}

func (v *Viewer)OnSetZero(x float64) {
	v.metrics.Intent("zero")
	v.SetZero(v.timeAt(x))
}

func (v *Viewer)OnSetGround(x float64) {
	v.metrics.Intent("ground")
	v.SetGround(v.timeAt(x))
}

func (v *Viewer)Repaint() {
	v.metrics.Repaint()
	if v.OnRepaint != nil { v.OnRepaint() }
}

// }}}

// {{{ v.timeAt, xAt

// timeAt converts an x coordinate to seconds since zero. Off the end of the
// track, it clamps to the nearest end.
func (v *Viewer)timeAt(x float64) float64 {
	if v.x.Key() == metric.KeyTime || len(v.track) == 0 { return x }
	xf := func(dp fp.Datapoint) float64 { return v.x.Value(dp, v.units) }
	if t,ok := v.track.Interpolate(x, xf, fp.Datapoint.Time); ok { return t }
	if x < xf(v.track[0]) { return v.track[0].T }
	return v.track[len(v.track)-1].T
}

// xAt converts seconds since zero to an x coordinate, clamping as timeAt does.
func (v *Viewer)xAt(t float64) float64 {
	if v.x.Key() == metric.KeyTime || len(v.track) == 0 { return t }
	xf := func(dp fp.Datapoint) float64 { return v.x.Value(dp, v.units) }
	if x,ok := v.track.Interpolate(t, fp.Datapoint.Time, xf); ok { return x }
	if t < v.track[0].T { return xf(v.track[0]) }
	return xf(v.track[len(v.track)-1])
}

// reframe carries out a change to how x is computed, keeping the window over
// the same stretch of the track.
func (v *Viewer)reframe(change func()) {
	t0, t1 := v.timeAt(v.window.Lower), v.timeAt(v.window.Upper)
	change()
	v.rederive()
	v.clearMark()

	w := axis.Range{Lower: v.xAt(t0), Upper: v.xAt(t1)}
	if !w.Valid() {
		v.ZoomToExtent()
		return
	}
	v.SetWindow(w)
}

// }}}
// {{{ v.SetZero, SetGround

// SetZero re-baselines time so that t (seconds since the current zero)
// becomes zero. A time window moves with it.
func (v *Viewer)SetZero(t float64) {
	v.baseline.Zero = v.baseline.Zero.Add(time.Duration(t * float64(time.Second)))
	v.rederive()
	v.clearMark()
	if v.x.Key() == metric.KeyTime {
		v.SetWindow(v.window.Shift(-t))
	} else {
		v.rerange()
	}
	v.logf("shell: zero set to %s", v.baseline.Zero.Format("15:04:05.000"))
}

// SetGround takes the height above MSL at time t as the new ground elevation.
func (v *Viewer)SetGround(t float64) {
	hmsl,ok := v.track.Interpolate(t, fp.Datapoint.Time, func(dp fp.Datapoint) float64 { return dp.HMSL })
	if !ok {
		v.logf("shell: no ground reference at t=%.2fs, outside the track", t)
		return
	}
	v.baseline.Ground = hmsl
	v.rederive()
	v.rerange()
	v.logf("shell: ground set to %.1fm MSL", hmsl)
}

// }}}
// {{{ v.SetVisible, SetColor, SetUnits, SetXAxis

func (v *Viewer)lookup(key string) (*metric.Metric, error) {
	m,exists := v.values.Lookup(key)
	if !exists { return nil, fmt.Errorf("shell: no metric %q", key) }
	return m, nil
}

func (v *Viewer)SetVisible(key string, visible bool) error {
	m,err := v.lookup(key)
	if err != nil { return err }
	m.SetVisible(visible)
	v.syncAxes()
	v.rerange()
	return nil
}

func (v *Viewer)SetColor(key string, c color.RGBA) error {
	m,err := v.lookup(key)
	if err != nil { return err }
	m.SetColor(c)
	return nil
}

func (v *Viewer)SetUnits(u fp.Units) {
	v.reframe(func() { v.units = u })
}

// SetXAxis picks which quantity runs along the horizontal axis.
func (v *Viewer)SetXAxis(key string) error {
	x,exists := v.xaxes.Lookup(key)
	if !exists { return fmt.Errorf("shell: no x axis %q", key) }
	v.reframe(func() { v.x = x })
	return nil
}

// }}}
// {{{ v.LoadSettings, SaveSettings

// LoadSettings applies stored visibility and colours. On error the metrics are
// at their defaults, and the viewer is still consistent.
func (v *Viewer)LoadSettings(ctx context.Context, s settings.Store) error {
	err := v.values.LoadSettings(ctx, s)
	if err != nil {
		v.logf("shell: using default metric settings: %v", err)
	}
	v.syncAxes()
	v.rerange()
	return err
}

func (v *Viewer)SaveSettings(ctx context.Context, s settings.Store) error {
	return v.values.SaveSettings(ctx, s)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
