package sink

import (
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/matzehuels/moatarget/pkg/config"
	"github.com/matzehuels/moatarget/pkg/errors"
	"github.com/matzehuels/moatarget/pkg/layout"
	"github.com/matzehuels/moatarget/pkg/units"
)

// pdfFont is one of the 14 standard PDF fonts, so no font file is embedded.
const pdfFont = "Helvetica"

// PDFCanvas draws onto a single PDF page.
type PDFCanvas struct {
	doc  *fpdf.Fpdf
	page layout.Bounds
}

// NewPDFCanvas starts a one-page document of the given size, in points.
func NewPDFCanvas(page layout.Bounds, opts ...Option) *PDFCanvas {
	o := newOptions(opts...)

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: page.Width.Points(), Ht: page.Height.Points()},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCatalogSort(true)
	if o.title != "" {
		doc.SetTitle(o.title, true)
	}
	doc.SetCreator(o.creator, true)
	if !o.created.IsZero() {
		doc.SetCreationDate(o.created)
		doc.SetModificationDate(o.created)
	}

	doc.AddPage()
	doc.SetLineCapStyle("butt")
	doc.SetFont(pdfFont, "", 12)

	return &PDFCanvas{doc: doc, page: page}
}

// y converts a y-up page coordinate to fpdf's top-down space.
func (c *PDFCanvas) y(v units.Length) float64 { return (c.page.Height - v).Points() }

func (c *PDFCanvas) PageSize() layout.Bounds { return c.page }

func (c *PDFCanvas) SetStrokeColor(col config.Color) {
	c.doc.SetDrawColor(int(col.R), int(col.G), int(col.B))
}

func (c *PDFCanvas) SetFillColor(col config.Color) {
	c.doc.SetFillColor(int(col.R), int(col.G), int(col.B))
	c.doc.SetTextColor(int(col.R), int(col.G), int(col.B))
}

func (c *PDFCanvas) SetLineWidth(w units.Length) { c.doc.SetLineWidth(w.Points()) }

func (c *PDFCanvas) Line(from, to layout.Point) {
	c.doc.Line(from.X.Points(), c.y(from.Y), to.X.Points(), c.y(to.Y))
}

func (c *PDFCanvas) FillRect(r layout.Rect) {
	c.doc.Rect(r.X.Points(), c.y(r.Top()), r.W.Points(), r.H.Points(), "F")
}

func (c *PDFCanvas) StrokeRect(r layout.Rect) {
	c.doc.Rect(r.X.Points(), c.y(r.Top()), r.W.Points(), r.H.Points(), "D")
}

func (c *PDFCanvas) SetFontSize(size units.Length) { c.doc.SetFontSize(size.Points()) }

func (c *PDFCanvas) TextWidth(s string) units.Length {
	return units.FromPoints(c.doc.GetStringWidth(s))
}

func (c *PDFCanvas) Text(s string, p layout.Point) {
	c.doc.Text(p.X.Points(), c.y(p.Y), s)
}

func (c *PDFCanvas) Err() error { return c.doc.Error() }

// Finish writes the PDF document to w.
func (c *PDFCanvas) Finish(w io.Writer) error {
	if err := c.doc.Output(w); err != nil {
		return errors.Wrap(errors.ErrCodeRenderingFailure, err, "write pdf")
	}
	return nil
}
