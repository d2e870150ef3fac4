// Package settings persists per-metric display preferences ({visible, color}),
// keyed by each metric's stable identity under a fixed namespace.
package settings

import(
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Namespace groups every plot value record, as in "plotValue/elevation".
const Namespace = "plotValue"

func Key(metricKey string) string { return Namespace + "/" + metricKey }

// A Record holds whatever was persisted for one metric; a nil field was not
// persisted (or could not be decoded) and the caller falls back to its default.
type Record struct {
	Visible *bool
	Color   *color.RGBA
}

func Bool(b bool) *bool { return &b }
func Color(c color.RGBA) *color.RGBA { return &c }

// Document is the full set of records, keyed by Key().
type Document map[string]Record

func (d Document)Clone() Document {
	out := Document{}
	for k,v := range d {
		out[k] = v
	}
	return out
}

// A Store loads and saves whole documents. A store that has never been saved
// to loads as an empty document, not an error.
type Store interface {
	Load(ctx context.Context) (Document, error)
	Save(ctx context.Context, doc Document) error
}

// {{{ FormatColor, ParseColor

// FormatColor renders #rrggbb, or #rrggbbaa when not opaque.
func FormatColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v,err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v>>24), G: uint8(v>>16), B: uint8(v>>8), A: uint8(v)}, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
