package sink

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/moatarget/pkg/buildinfo"
)

// DefaultDPI is the resolution of PNG previews.
const DefaultDPI = 150

// Option configures a sink.
type Option func(*options)

type options struct {
	title   string
	creator string
	created time.Time
	dpi     float64
	logger  *log.Logger
}

func newOptions(opts ...Option) options {
	o := options{
		creator: buildinfo.Creator(),
		dpi:     DefaultDPI,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTitle sets the document title metadata.
func WithTitle(s string) Option { return func(o *options) { o.title = s } }

// WithCreator sets the document creator metadata.
func WithCreator(s string) Option { return func(o *options) { o.creator = s } }

// WithCreationDate fixes the PDF creation date. Without it the PDF carries
// the time of rendering and two runs never produce identical bytes.
func WithCreationDate(t time.Time) Option { return func(o *options) { o.created = t } }

// WithDPI sets the PNG resolution. Non-positive values keep the default.
func WithDPI(dpi float64) Option {
	return func(o *options) {
		if dpi > 0 {
			o.dpi = dpi
		}
	}
}

// WithLogger routes sink and renderer debug output to l.
func WithLogger(l *log.Logger) Option { return func(o *options) { o.logger = l } }
