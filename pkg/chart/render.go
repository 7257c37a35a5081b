package chart

import (
	"strconv"

	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/errors"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/trips"
)

// labelOffset is the gap in pixels between a spoke's outer end and its
// station name label.
const labelOffset = 2

// Renderer draws the radial trip chart. It holds no per-render state; the
// same Renderer can serve any number of Render calls.
type Renderer struct {
	cfg Config
}

// NewRenderer validates cfg and returns a renderer using it.
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{cfg: cfg}, nil
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Render draws records onto surface in a single pass: background and
// title, then reference rings, then one spoke per record. It does not
// retain references to records or surface after returning.
//
// Render returns an error with code EMPTY_DATASET when records is empty
// and DEGENERATE_DATASET when every count is zero.
func (r *Renderer) Render(surface Surface, records []trips.Station) error {
	if len(records) == 0 {
		return errors.New(errors.ErrCodeEmptyDataset, "nothing to draw: no station records")
	}

	scale, err := NewScale(r.cfg.MinLen, r.cfg.MaxLen, trips.MaxCount(records))
	if err != nil {
		return err
	}

	surface.Clear(r.cfg.Background)
	r.drawTitle(surface)
	r.drawRings(surface, scale)
	r.drawSpokes(surface, scale, records)
	return nil
}

// drawTitle draws the title centered near the bottom edge.
func (r *Renderer) drawTitle(s Surface) {
	s.ClearStroke()
	s.SetFill(r.cfg.Foreground)
	s.SetFont(r.cfg.TitleFontSize)
	s.SetTextAlign(AlignCenter, AlignMiddle)
	s.Text(r.cfg.Width/2, r.cfg.Height-20, r.cfg.Title)
}

// drawRings draws the origin label and the concentric reference rings with
// their tick labels. The frame is re-centered on the canvas for the whole
// pass and restored before returning.
func (r *Renderer) drawRings(s Surface, scale Scale) {
	s.Push()
	defer s.Pop()

	s.Translate(r.cfg.Width/2, r.cfg.Height/2)
	s.SetTextAlign(AlignCenter, AlignMiddle)

	// Origin station name at the center.
	s.ClearStroke()
	s.SetFill(r.cfg.Foreground)
	s.SetFont(r.cfg.OriginFontSize)
	s.Text(0, 0, r.cfg.Origin)

	// One ring per tick. The bound is one increment past the maximum so
	// the busiest station always sits inside a labeled ring.
	s.SetFont(r.cfg.LabelFontSize)
	for tick := 0; tick < scale.MaxValue+r.cfg.TickStep; tick += r.cfg.TickStep {
		radius := scale.Length(tick)

		s.ClearFill()
		s.SetStroke(r.cfg.TickColor)
		s.Ring(0, 0, radius)

		s.ClearStroke()
		s.SetFill(r.cfg.Foreground)
		s.Text(radius, 0, FormatThousands(tick))
	}
}

// drawSpokes draws one radiating line and name label per station. The
// frame is re-centered and rotated cumulatively by one lane per record;
// the extra lane keeps the first and last spokes from coinciding at the
// 0/360 seam.
func (r *Renderer) drawSpokes(s Surface, scale Scale, records []trips.Station) {
	s.Push()
	defer s.Pop()

	s.Translate(r.cfg.Width/2, r.cfg.Height/2)

	laneAngle := 360 / float64(len(records)+1)
	for _, record := range records {
		s.Rotate(laneAngle)

		length := scale.Length(record.Count)

		s.ClearFill()
		s.SetStroke(r.cfg.Foreground)
		s.Line(r.cfg.MinLen, 0, length, 0)

		s.ClearStroke()
		s.SetFill(r.cfg.Foreground)
		s.SetFont(r.cfg.LabelFontSize)
		s.SetTextAlign(AlignLeft, AlignMiddle)
		s.Text(length+labelOffset, 0, record.Name)
	}
}

// FormatThousands renders n with comma grouping, e.g. 15000 -> "15,000".
// Tick labels and the CLI station listing share this format.
func FormatThousands(n int) string {
	digits := strconv.Itoa(n)
	if len(digits) <= 3 {
		return digits
	}

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return string(out)
}
