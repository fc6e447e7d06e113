package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"

	"github.com/matzehuels/moatarget/pkg/config"
	"github.com/matzehuels/moatarget/pkg/errors"
	"github.com/matzehuels/moatarget/pkg/layout"
)

func defaultLayout(t *testing.T) layout.Layout {
	t.Helper()
	l, err := layout.Compute(config.Default())
	if err != nil {
		t.Fatalf("layout.Compute() error = %v", err)
	}
	return l
}

func TestRenderPDF(t *testing.T) {
	l := defaultLayout(t)
	data, err := Render(context.Background(), FormatPDF, l,
		WithTitle(l.Title),
		WithCreationDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Render(pdf) error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("PDF output starts with %q", data[:min(len(data), 8)])
	}
	if !bytes.Contains(data, []byte("%%EOF")) {
		t.Error("PDF output has no EOF marker")
	}
}

func TestPDFCanvasTextWidth(t *testing.T) {
	c := NewPDFCanvas(layout.Letter)
	c.SetFontSize(8)
	short, long := c.TextWidth("7 yards"), c.TextWidth("300 yards")
	if short <= 0 || long <= short {
		t.Errorf("TextWidth() = %v, %v; want 0 < short < long", short, long)
	}
}

func TestRenderSVG(t *testing.T) {
	l := defaultLayout(t)
	data, err := Render(context.Background(), FormatSVG, l, WithTitle("Grid & Target"))
	if err != nil {
		t.Fatalf("Render(svg) error = %v", err)
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("SVG is not well-formed: %v", err)
		}
	}

	s := string(data)
	if !strings.HasPrefix(s, "<svg ") {
		t.Errorf("SVG output starts with %q", s[:min(len(s), 10)])
	}
	if got := strings.Count(s, "<line "); got != 3+2*11+2 {
		t.Errorf("line count = %d, want %d", got, 3+2*11+2)
	}
	for _, want := range []string{"7 yards", "6 squares per MOA", "Grid &amp; Target", `fill="#ffa500"`, "1&#34;"} {
		if !strings.Contains(s, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	l := defaultLayout(t)
	data, err := Render(context.Background(), FormatPNG, l)
	if err != nil {
		t.Fatalf("Render(png) error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 1275 || b.Dy() != 1650 {
		t.Errorf("PNG size = %dx%d, want 1275x1650", b.Dx(), b.Dy())
	}

	r, g, bl, _ := img.At(5, 5).RGBA()
	if r>>8 != 255 || g>>8 != 255 || bl>>8 != 255 {
		t.Errorf("corner pixel = %d,%d,%d, want white", r>>8, g>>8, bl>>8)
	}

	// A point inside the bullseye clear of grid and crosshair lines.
	r, g, bl, _ = img.At(615, 848).RGBA()
	if r>>8 < 200 || g>>8 < 120 || g>>8 > 200 || bl>>8 > 80 {
		t.Errorf("bull pixel = %d,%d,%d, want orange", r>>8, g>>8, bl>>8)
	}
}

func TestRenderPNGKeepsRasterLogger(t *testing.T) {
	before := gg.Logger()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})

	for i := 0; i < 2; i++ {
		if _, err := Render(context.Background(), FormatPNG, defaultLayout(t), WithDPI(36), WithLogger(logger)); err != nil {
			t.Fatalf("Render(png) error = %v", err)
		}
	}
	if gg.Logger() != before {
		t.Error("rendering a PNG replaced the raster library logger")
	}
}

func TestSetRasterLogger(t *testing.T) {
	defer SetRasterLogger(nil)

	var buf bytes.Buffer
	SetRasterLogger(log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}))
	gg.Logger().Info("adapter selected", "backend", "cpu")
	if !strings.Contains(buf.String(), "adapter selected") {
		t.Errorf("raster log output = %q, want the bridged message", buf.String())
	}

	SetRasterLogger(nil)
	buf.Reset()
	gg.Logger().Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("raster log output after reset = %q, want none", buf.String())
	}
}

func TestPNGCanvasDPI(t *testing.T) {
	c := NewPNGCanvas(layout.Letter, WithDPI(72))
	defer c.Close()
	if w, h := c.Size(); w != 612 || h != 792 {
		t.Errorf("Size() = %dx%d, want 612x792", w, h)
	}
}

func TestRenderJSON(t *testing.T) {
	l := defaultLayout(t)
	a, err := RenderJSON(l)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}
	b, err := RenderJSON(defaultLayout(t))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("RenderJSON() output differs for identical layouts")
	}

	var out jsonOutput
	if err := json.Unmarshal(a, &out); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if out.Units != "pt" {
		t.Errorf("Units = %q, want pt", out.Units)
	}
	if out.Layout.Geometry.SideLength != 432 {
		t.Errorf("SideLength = %v, want 432", out.Layout.Geometry.SideLength)
	}
	if len(out.Layout.Rows) != 8 || out.Layout.Rows[4].Description != "1 square per MOA" {
		t.Errorf("Rows = %+v", out.Layout.Rows)
	}
	if out.Layout.Grid.BullColor != config.Orange {
		t.Errorf("BullColor = %v, want %v", out.Layout.Grid.BullColor, config.Orange)
	}
}

func TestRenderErrors(t *testing.T) {
	l := defaultLayout(t)

	if _, err := Render(context.Background(), "gif", l); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render(gif) error = %v, want INVALID_FORMAT", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Render(ctx, FormatSVG, l); !errors.Is(err, errors.ErrCodeRenderingFailure) {
		t.Errorf("Render(cancelled) error = %v, want RENDERING_FAILURE", err)
	}
}

func TestIsFormat(t *testing.T) {
	tests := []struct {
		format string
		want   bool
	}{
		{"pdf", true},
		{"svg", true},
		{"png", true},
		{"json", true},
		{"PDF", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := IsFormat(tt.format); got != tt.want {
				t.Errorf("IsFormat(%q) = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}
