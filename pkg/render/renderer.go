package render

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/moatarget/pkg/errors"
	"github.com/matzehuels/moatarget/pkg/layout"
	"github.com/matzehuels/moatarget/pkg/observability"
)

// Phase is one step of drawing a document.
type Phase string

const (
	PhaseTable    Phase = "table"
	PhaseRuler    Phase = "ruler"
	PhaseTarget   Phase = "target"
	PhaseFinalize Phase = "finalize"
)

// Phases lists the drawing phases in execution order.
var Phases = []Phase{PhaseTable, PhaseRuler, PhaseTarget, PhaseFinalize}

// Renderer draws a layout onto a canvas.
type Renderer struct {
	// Format names the output in logs and observability events.
	Format string
	// Logger receives debug output. Nil disables logging.
	Logger *log.Logger
}

// Render draws l onto c and writes the finished page to w.
//
// Phases run in the order of [Phases]. The first failure, including a
// cancelled context, aborts the document and is returned as
// RENDERING_FAILURE.
func (r Renderer) Render(ctx context.Context, l layout.Layout, c Canvas, w io.Writer) error {
	if page := c.PageSize(); page != l.Page {
		return errors.New(errors.ErrCodeRenderingFailure,
			"canvas page %s x %s does not match layout page %s x %s",
			page.Width, page.Height, l.Page.Width, l.Page.Height)
	}

	for _, phase := range Phases {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(errors.ErrCodeRenderingFailure, err, "render %s cancelled before %s", r.Format, phase)
		}
		if err := r.runPhase(ctx, phase, l, c, w); err != nil {
			return errors.Wrap(errors.ErrCodeRenderingFailure, err, "render %s: %s phase failed", r.Format, phase)
		}
	}
	return nil
}

func (r Renderer) runPhase(ctx context.Context, phase Phase, l layout.Layout, c Canvas, w io.Writer) error {
	hooks := observability.Render()
	hooks.OnPhaseStart(ctx, r.Format, string(phase))
	start := time.Now()

	var err error
	switch phase {
	case PhaseTable:
		drawTablePhase(c, l)
		err = c.Err()
	case PhaseRuler:
		drawRuler(c, l)
		err = c.Err()
	case PhaseTarget:
		drawTarget(c, l)
		err = c.Err()
	case PhaseFinalize:
		err = c.Finish(w)
	}

	elapsed := time.Since(start)
	hooks.OnPhaseComplete(ctx, r.Format, string(phase), elapsed, err)
	if r.Logger != nil {
		r.Logger.Debug("Render phase", "format", r.Format, "phase", phase, "elapsed", elapsed, "err", err)
	}
	return err
}

func drawTablePhase(c Canvas, l layout.Layout) {
	c.SetFontSize(l.TableStyle.FontSize)
	t := LayoutTable(l.Rows, l.TableStyle, l.Margin, c.TextWidth)
	drawTable(c, t, l.TableStyle, l.Grid.LineWidth)
}

// drawRuler draws the reference segment, its end ticks and the centered
// label inside the margin box.
func drawRuler(c Canvas, l layout.Layout) {
	f := NewFrame(c, l.Margin)
	r := l.Ruler

	c.SetStrokeColor(l.RulerStyle.Color)
	c.SetLineWidth(l.Grid.LineWidth)
	f.Line(layout.Pt(r.Left, r.Y), layout.Pt(r.Right, r.Y))
	f.Line(layout.Pt(r.Left, r.Y-r.TickHalfHeight), layout.Pt(r.Left, r.Y+r.TickHalfHeight))
	f.Line(layout.Pt(r.Right, r.Y-r.TickHalfHeight), layout.Pt(r.Right, r.Y+r.TickHalfHeight))

	c.SetFillColor(l.RulerStyle.Color)
	size := l.TableStyle.FontSize
	box := layout.RectFromTopLeft(layout.Pt(r.Left, r.LabelTop), r.Width(), lineHeight(size))
	f.Text(r.Label, box, AlignCenter, size)
}

// drawTarget fills the bullseye, then strokes the frame, the grid lines and
// the crosshair over it.
func drawTarget(c Canvas, l layout.Layout) {
	f := NewFrame(c, l.Frame)

	c.SetFillColor(l.Grid.BullColor)
	f.FillRect(l.Bull)

	c.SetStrokeColor(l.Grid.LineColor)
	c.SetLineWidth(l.Grid.LineWidth)
	f.StrokeBounds()

	for _, gl := range l.GridLines {
		c.SetLineWidth(gl.Width)
		f.VLine(gl.Offset)
		f.HLine(gl.Offset)
	}

	c.SetLineWidth(l.Crosshair.Width)
	f.VLine(l.Crosshair.Offset)
	f.HLine(l.Crosshair.Offset)
}
