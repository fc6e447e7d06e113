package sink

import (
	"io"
	"log/slog"
	"math"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/moatarget/pkg/config"
	"github.com/matzehuels/moatarget/pkg/errors"
	"github.com/matzehuels/moatarget/pkg/layout"
	"github.com/matzehuels/moatarget/pkg/units"
)

// SetRasterLogger routes the raster library's diagnostics to l, or silences
// them when l is nil. The setting is process-wide; call it once at startup.
func SetRasterLogger(l *log.Logger) {
	if l == nil {
		gg.SetLogger(nil)
		return
	}
	gg.SetLogger(slog.New(l))
}

// PNGCanvas rasterizes the page for on-screen previews.
type PNGCanvas struct {
	dc    *gg.Context
	page  layout.Bounds
	scale float64

	stroke config.Color
	fill   config.Color
	size   units.Length

	fonts  *text.FontSource
	faces  map[units.Length]text.Face
	err    error
	closed bool
}

// NewPNGCanvas creates a white raster page at the configured DPI.
func NewPNGCanvas(page layout.Bounds, opts ...Option) *PNGCanvas {
	o := newOptions(opts...)

	scale := o.dpi / units.PointsPerInch
	w := int(math.Round(page.Width.Points() * scale))
	h := int(math.Round(page.Height.Points() * scale))

	c := &PNGCanvas{
		dc:    gg.NewContext(w, h),
		page:  page,
		scale: scale,
		size:  units.FromPoints(12),
		faces: map[units.Length]text.Face{},
	}
	c.dc.ClearWithColor(gg.White)
	c.dc.SetLineCap(gg.LineCapButt)

	fonts, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		c.err = errors.Wrap(errors.ErrCodeRenderingFailure, err, "load png font")
	}
	c.fonts = fonts
	return c
}

// Size returns the raster dimensions in pixels.
func (c *PNGCanvas) Size() (w, h int) { return c.dc.Width(), c.dc.Height() }

func (c *PNGCanvas) px(v units.Length) float64 { return v.Points() * c.scale }
func (c *PNGCanvas) py(v units.Length) float64 { return (c.page.Height - v).Points() * c.scale }

func (c *PNGCanvas) fail(err error, what string) {
	if err != nil && c.err == nil {
		c.err = errors.Wrap(errors.ErrCodeRenderingFailure, err, "%s", what)
	}
}

func setColor(dc *gg.Context, col config.Color) {
	dc.SetRGB(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255)
}

func (c *PNGCanvas) PageSize() layout.Bounds { return c.page }

func (c *PNGCanvas) SetStrokeColor(col config.Color) { c.stroke = col }
func (c *PNGCanvas) SetFillColor(col config.Color)   { c.fill = col }
func (c *PNGCanvas) SetLineWidth(w units.Length)     { c.dc.SetLineWidth(c.px(w)) }
func (c *PNGCanvas) SetFontSize(size units.Length)   { c.size = size }

func (c *PNGCanvas) Line(from, to layout.Point) {
	setColor(c.dc, c.stroke)
	c.dc.DrawLine(c.px(from.X), c.py(from.Y), c.px(to.X), c.py(to.Y))
	c.fail(c.dc.Stroke(), "stroke line")
}

func (c *PNGCanvas) FillRect(r layout.Rect) {
	setColor(c.dc, c.fill)
	c.dc.DrawRectangle(c.px(r.X), c.py(r.Top()), c.px(r.W), c.px(r.H))
	c.fail(c.dc.Fill(), "fill rect")
}

func (c *PNGCanvas) StrokeRect(r layout.Rect) {
	setColor(c.dc, c.stroke)
	c.dc.DrawRectangle(c.px(r.X), c.py(r.Top()), c.px(r.W), c.px(r.H))
	c.fail(c.dc.Stroke(), "stroke rect")
}

// face selects the current font size on the context.
func (c *PNGCanvas) face() bool {
	if c.fonts == nil {
		return false
	}
	f, ok := c.faces[c.size]
	if !ok {
		f = c.fonts.Face(c.px(c.size))
		c.faces[c.size] = f
	}
	c.dc.SetFont(f)
	return true
}

func (c *PNGCanvas) TextWidth(s string) units.Length {
	if !c.face() {
		return 0
	}
	w, _ := c.dc.MeasureString(s)
	return units.FromPoints(w / c.scale)
}

func (c *PNGCanvas) Text(s string, p layout.Point) {
	if !c.face() {
		return
	}
	setColor(c.dc, c.fill)
	c.dc.DrawString(s, c.px(p.X), c.py(p.Y))
}

func (c *PNGCanvas) Err() error { return c.err }

// Close releases the raster and font. It is safe to call more than once.
func (c *PNGCanvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.fonts != nil {
		c.fonts.Close()
	}
	return c.dc.Close()
}

// Finish encodes the page as PNG and releases the raster.
func (c *PNGCanvas) Finish(w io.Writer) error {
	defer c.Close()
	if c.err != nil {
		return c.err
	}
	if err := c.dc.EncodePNG(w); err != nil {
		return errors.Wrap(errors.ErrCodeRenderingFailure, err, "encode png")
	}
	return nil
}
