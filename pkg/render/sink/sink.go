package sink

import (
	"bytes"
	"context"
	"io"
	"slices"

	"github.com/matzehuels/moatarget/pkg/errors"
	"github.com/matzehuels/moatarget/pkg/layout"
	"github.com/matzehuels/moatarget/pkg/render"
)

// Output format names.
const (
	FormatPDF  = "pdf"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// Formats lists every supported output format.
var Formats = []string{FormatPDF, FormatSVG, FormatPNG, FormatJSON}

// IsFormat reports whether f is a supported output format.
func IsFormat(f string) bool { return slices.Contains(Formats, f) }

// NewCanvas returns the drawing surface for a vector or raster format.
func NewCanvas(format string, page layout.Bounds, opts ...Option) (render.Canvas, error) {
	switch format {
	case FormatPDF:
		return NewPDFCanvas(page, opts...), nil
	case FormatSVG:
		return NewSVGCanvas(page, opts...), nil
	case FormatPNG:
		return NewPNGCanvas(page, opts...), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "no canvas for format %q", format)
	}
}

// Render produces the document for l in the given format.
func Render(ctx context.Context, format string, l layout.Layout, opts ...Option) ([]byte, error) {
	if format == FormatJSON {
		data, err := RenderJSON(l)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderingFailure, err, "render json")
		}
		return data, nil
	}

	c, err := NewCanvas(format, l.Page, opts...)
	if err != nil {
		return nil, err
	}
	if cl, ok := c.(io.Closer); ok {
		defer cl.Close()
	}
	o := newOptions(opts...)
	r := render.Renderer{Format: format, Logger: o.logger}

	var buf bytes.Buffer
	if err := r.Render(ctx, l, c, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
