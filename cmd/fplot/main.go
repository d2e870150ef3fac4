package main

// fplot renders a flight track as a multi-axis PDF plot: one value axis per
// visible metric, over a window of time (or distance).
//
//  go run ./cmd/fplot -visible=verticalSpeed,horizontalSpeed -window=0,60 -out=jump.pdf
//  go run ./cmd/fplot -settings=gs://my-bucket/flightplot.json -credentials=key.json -save
//  go run ./cmd/fplot -tool=measure -drag=40,55 -visible=totalSpeed

import(
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/api/option"

	fp "github.com/skypies/flightplot"
	"github.com/skypies/flightplot/axis"
	"github.com/skypies/flightplot/fpdf"
	"github.com/skypies/flightplot/interact"
	"github.com/skypies/flightplot/observability"
	"github.com/skypies/flightplot/settings"
	"github.com/skypies/flightplot/shell"
)

var(
	ctx = context.Background()
	fVerbosity int
	fSettings string
	fCredentials string
	fUnits string
	fVisible string
	fWindow string
	fXAxis string
	fZero string
	fGround string
	fMark string
	fTool string
	fDrag string
	fOut string
	fMetrics string
	fStart string
	fTrace bool
	fSave bool
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.StringVar(&fSettings, "settings", "", "metric settings: a file path, or gs://bucket/object")
	flag.StringVar(&fCredentials, "credentials", "", "service account JSON, for gs:// settings")
	flag.StringVar(&fUnits, "units", "metric", "metric, or imperial")
	flag.StringVar(&fVisible, "visible", "", "metrics to show (key), or hide (-key); comma separated")
	flag.StringVar(&fWindow, "window", "", "x window as lower,upper; default is the whole track")
	flag.StringVar(&fXAxis, "x", "time", "x axis: time, distance2D or distance3D")
	flag.StringVar(&fZero, "zero", "", "seconds into the track to take as t=0")
	flag.StringVar(&fGround, "ground", "", "seconds into the track at which we're on the ground")
	flag.StringVar(&fMark, "mark", "", "x coordinate at which to draw the cursor, and print a readout")
	flag.StringVar(&fTool, "tool", "pan", "tool for -drag: pan, zoom, measure, zero or ground")
	flag.StringVar(&fDrag, "drag", "", "x0,x1: drag the tool from x0 to x1, as a mouse would")
	flag.StringVar(&fOut, "out", "fplot.pdf", "PDF output file")
	flag.StringVar(&fMetrics, "metrics", "", "write Prometheus metrics to this textfile on exit")
	flag.StringVar(&fStart, "start", "2024-06-01T17:00:00Z", "exit time of the synthetic jump (RFC3339)")
	flag.BoolVar(&fTrace, "trace", false, "print OpenTelemetry spans to stdout")
	flag.BoolVar(&fSave, "save", false, "write the metric settings back when done")
}

// {{{ initTracing

func initTracing() (func(context.Context) error, error) {
	exp,err := stdouttrace.New(stdouttrace.WithWriter(os.Stdout), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("stdouttrace: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", "fplot"))),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// }}}
// {{{ parseFloats

func parseFloats(s string, n int) ([]float64, error) {
	bits := strings.Split(s, ",")
	if len(bits) != n {
		return nil, fmt.Errorf("'%s': want %d comma separated numbers", s, n)
	}
	ret := []float64{}
	for _,bit := range bits {
		f,err := strconv.ParseFloat(strings.TrimSpace(bit), 64)
		if err != nil { return nil, err }
		ret = append(ret, f)
	}
	return ret, nil
}

// }}}
// {{{ openSettings

func openSettings(v *shell.Viewer) (settings.Store, func() error) {
	opts := []option.ClientOption{}
	if fCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(fCredentials))
	}
	store,closer,err := settings.Open(ctx, fSettings, opts...)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}
	if err := v.LoadSettings(ctx, store); err != nil {
		log.Printf("settings: %v (carrying on with defaults)", err)
	}
	return store, closer
}

// }}}
// {{{ configure

// configure applies the command line to the viewer, in the order a user
// would: units and axes first, then references, then the window.
func configure(v *shell.Viewer) {
	u,err := fp.ParseUnits(fUnits)
	if err != nil { log.Fatal(err) }
	v.SetUnits(u)

	if err := v.SetXAxis(fXAxis); err != nil { log.Fatal(err) }

	for _,key := range strings.Split(fVisible, ",") {
		key = strings.TrimSpace(key)
		if key == "" { continue }
		visible := !strings.HasPrefix(key, "-")
		if err := v.SetVisible(strings.TrimPrefix(key, "-"), visible); err != nil {
			log.Fatal(err)
		}
	}

	if fGround != "" {
		f,err := parseFloats(fGround, 1)
		if err != nil { log.Fatalf("-ground: %v", err) }
		v.SetGround(f[0])
	}
	if fZero != "" {
		f,err := parseFloats(fZero, 1)
		if err != nil { log.Fatalf("-zero: %v", err) }
		v.SetZero(f[0])
	}

	if fWindow != "" {
		f,err := parseFloats(fWindow, 2)
		if err != nil { log.Fatalf("-window: %v", err) }
		if err := v.SetWindow(axis.Range{Lower: f[0], Upper: f[1]}); err != nil {
			log.Fatalf("-window: %v", err)
		}
	} else {
		v.ZoomToExtent()
	}
}

// }}}
// {{{ drag

// drag runs the -tool from x0 to x1 through the controller, a press, a move
// and a release at mid height, just as a mouse over the plot would.
func drag(v *shell.Viewer) {
	tool,err := interact.ParseTool(fTool)
	if err != nil { log.Fatalf("-tool: %v", err) }
	f,err := parseFloats(fDrag, 2)
	if err != nil { log.Fatalf("-drag: %v", err) }

	v.SetTool(tool)
	r := v.Rect()
	y := (r.Top + r.Bottom) / 2
	from := interact.Point{X: v.CoordToPixel(f[0]), Y: y}
	to := interact.Point{X: v.CoordToPixel(f[1]), Y: y}

	c := v.Controller()
	if !c.Press(from) {
		log.Fatalf("-drag: %g is outside the window %s", f[0], v.Window())
	}
	c.Move(to)
	c.Release(to)
	v.SetTool(interact.Pan)
}

// }}}

func main() {
	flag.Parse()

	if fTrace {
		shutdown,err := initTracing()
		if err != nil { log.Fatal(err) }
		defer shutdown(ctx)
	}

	start,err := time.Parse(time.RFC3339, fStart)
	if err != nil { log.Fatalf("-start: %v", err) }
	track := defaultJump(start.UTC()).synthesize()
	log.Printf("synthetic jump: %s\n", track)

	collector,err := observability.NewCollector(prometheus.NewRegistry())
	if err != nil { log.Fatal(err) }

	v := shell.New(track, collector)
	if fVerbosity > 0 {
		v.Log = log.Default()
	}
	v.OnReadout = func(r *shell.Readout) {
		if r != nil { log.Printf("readout: %s\n", r) }
	}
	v.OnMeasurement = func(m shell.Measurement) {
		log.Printf("measurement: %s\n", m)
	}

	var store settings.Store
	if fSettings != "" {
		var closer func() error
		store,closer = openSettings(v)
		defer closer()
	}

	configure(v)

	// Lay out the page; its millimetres are the controller's pixels
	v.SetRect(fpdf.PlotRect(v.Axes().Len()))
	if fDrag != "" {
		drag(v)
	}
	if fMark != "" {
		f,err := parseFloats(fMark, 1)
		if err != nil { log.Fatalf("-mark: %v", err) }
		r := v.Rect()
		v.Controller().Move(interact.Point{X: v.CoordToPixel(f[0]), Y: (r.Top + r.Bottom) / 2})
	}

	snap := v.Snapshot()
	p := fpdf.Plot{
		Track:   v.Track(),
		X:       v.XAxis(),
		Units:   v.Units(),
		Window:  v.Window(),
		Axes:    v.Axes(),
		Overlay: &snap,
		Start:   v.Baseline().Zero,
		Caption: fmt.Sprintf("* Synthetic jump, %d points, ground %.0fm MSL\n",
			len(v.Track()), v.Baseline().Ground),
	}

	f,err := os.Create(fOut)
	if err != nil { log.Fatal(err) }
	if err := p.Output(ctx, f); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil { log.Fatal(err) }
	log.Printf("wrote %s (%s %s, %d axes)\n", fOut, v.XAxis().Key(), v.Window(), v.Axes().Len())

	if fSave && store != nil {
		if err := v.SaveSettings(ctx, store); err != nil {
			log.Printf("settings: %v\n", err)
		}
	}

	if fMetrics != "" {
		if err := prometheus.WriteToTextfile(fMetrics, collector.Gatherer()); err != nil {
			log.Printf("metrics: %v\n", err)
		}
	}
	if fVerbosity > 0 {
		if s,err := collector.Summary(); err == nil {
			log.Printf("metrics: %s\n", s)
		}
	}
}
