package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/moatarget/pkg/config"
	"github.com/matzehuels/moatarget/pkg/errors"
	"github.com/matzehuels/moatarget/pkg/layout"
	"github.com/matzehuels/moatarget/pkg/units"
)

const svgFontFamily = "Helvetica, Arial, sans-serif"

var (
	goRegularOnce sync.Once
	goRegular     *opentype.Font
	goRegularErr  error
)

// metricsFont returns the parsed Go Regular font used to measure SVG text.
func metricsFont() (*opentype.Font, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)
	})
	return goRegular, goRegularErr
}

// SVGCanvas builds an SVG document in memory.
type SVGCanvas struct {
	page layout.Bounds
	opts options
	buf  bytes.Buffer

	stroke config.Color
	fill   config.Color
	width  units.Length
	size   units.Length

	faces map[units.Length]font.Face
	err   error
}

// NewSVGCanvas starts an SVG document sized to page, one user unit per point.
func NewSVGCanvas(page layout.Bounds, opts ...Option) *SVGCanvas {
	c := &SVGCanvas{
		page:  page,
		opts:  newOptions(opts...),
		width: units.Point,
		size:  units.FromPoints(12),
		faces: map[units.Length]font.Face{},
	}
	w, h := page.Width.Points(), page.Height.Points()
	fmt.Fprintf(&c.buf, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="0 0 %s %s" width="%spt" height="%spt">`+"\n",
		num(w), num(h), num(w), num(h))
	if c.opts.title != "" {
		c.buf.WriteString("  <title>")
		c.escape(c.opts.title)
		c.buf.WriteString("</title>\n")
	}
	fmt.Fprintf(&c.buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", config.White)
	return c
}

// num formats a coordinate without trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = trimZeros(s)
	if s == "-0" {
		return "0"
	}
	return s
}

func trimZeros(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}

func (c *SVGCanvas) escape(s string) {
	if err := xml.EscapeText(&c.buf, []byte(s)); err != nil && c.err == nil {
		c.err = err
	}
}

func (c *SVGCanvas) x(v units.Length) string { return num(v.Points()) }
func (c *SVGCanvas) y(v units.Length) string { return num((c.page.Height - v).Points()) }

func (c *SVGCanvas) PageSize() layout.Bounds { return c.page }

func (c *SVGCanvas) SetStrokeColor(col config.Color) { c.stroke = col }
func (c *SVGCanvas) SetFillColor(col config.Color)   { c.fill = col }
func (c *SVGCanvas) SetLineWidth(w units.Length)     { c.width = w }
func (c *SVGCanvas) SetFontSize(size units.Length)   { c.size = size }

func (c *SVGCanvas) Line(from, to layout.Point) {
	fmt.Fprintf(&c.buf, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		c.x(from.X), c.y(from.Y), c.x(to.X), c.y(to.Y), c.stroke, num(c.width.Points()))
}

func (c *SVGCanvas) FillRect(r layout.Rect) {
	fmt.Fprintf(&c.buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		c.x(r.X), c.y(r.Top()), num(r.W.Points()), num(r.H.Points()), c.fill)
}

func (c *SVGCanvas) StrokeRect(r layout.Rect) {
	fmt.Fprintf(&c.buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
		c.x(r.X), c.y(r.Top()), num(r.W.Points()), num(r.H.Points()), c.stroke, num(c.width.Points()))
}

func (c *SVGCanvas) face() (font.Face, error) {
	if f, ok := c.faces[c.size]; ok {
		return f, nil
	}
	ft, err := metricsFont()
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    c.size.Points(),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	c.faces[c.size] = f
	return f, nil
}

func (c *SVGCanvas) TextWidth(s string) units.Length {
	f, err := c.face()
	if err != nil {
		if c.err == nil {
			c.err = errors.Wrap(errors.ErrCodeRenderingFailure, err, "load svg metrics font")
		}
		return 0
	}
	return units.FromPoints(fixedToFloat(font.MeasureString(f, s)))
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

func (c *SVGCanvas) Text(s string, p layout.Point) {
	fmt.Fprintf(&c.buf, `  <text x="%s" y="%s" font-family="%s" font-size="%s" fill="%s">`,
		c.x(p.X), c.y(p.Y), svgFontFamily, num(c.size.Points()), c.fill)
	c.escape(s)
	c.buf.WriteString("</text>\n")
}

func (c *SVGCanvas) Err() error { return c.err }

// Finish closes the document and writes it to w.
func (c *SVGCanvas) Finish(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	for _, f := range c.faces {
		f.Close()
	}
	c.buf.WriteString("</svg>\n")
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		return errors.Wrap(errors.ErrCodeRenderingFailure, err, "write svg")
	}
	return nil
}
