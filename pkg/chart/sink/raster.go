package sink

import (
	"bytes"
	"image"
	"image/png"

	"github.com/fogleman/gg"

	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/chart"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/errors"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/fonts"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/trips"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the raster scale factor (default 1.0; use 2.0 for 2x
// resolution output).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG draws records with the given configuration and returns the
// encoded PNG bytes.
func RenderPNG(records []trips.Station, cfg chart.Config, opts ...PNGOption) ([]byte, error) {
	img, err := RenderImage(records, cfg, opts...)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// RenderImage draws records and returns the raster image. The interactive
// viewer uses this directly instead of going through PNG encoding.
func RenderImage(records []trips.Station, cfg chart.Config, opts ...PNGOption) (image.Image, error) {
	p := pngRenderer{scale: 1.0}
	for _, opt := range opts {
		opt(&p)
	}

	r, err := chart.NewRenderer(cfg)
	if err != nil {
		return nil, err
	}

	surface := newRasterSurface(cfg.Width, cfg.Height, p.scale)
	if err := r.Render(surface, records); err != nil {
		return nil, err
	}
	if surface.err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, surface.err, "load font face")
	}
	return surface.dc.Image(), nil
}

// rasterSurface draws chart commands onto a gg context. Fill and stroke
// are tracked as separate channels the way the renderer expects; gg keeps
// a single current color, so the right channel color is applied just
// before each draw.
type rasterSurface struct {
	dc       *gg.Context
	fill     string
	stroke   string
	fontSize float64
	hAlign   chart.HAlign
	vAlign   chart.VAlign
	err      error // first font failure, checked after the pass
}

func newRasterSurface(width, height, scale float64) *rasterSurface {
	dc := gg.NewContext(int(width*scale), int(height*scale))
	dc.Scale(scale, scale)
	return &rasterSurface{
		dc:     dc,
		hAlign: chart.AlignLeft,
		vAlign: chart.AlignBottom,
	}
}

func (r *rasterSurface) Clear(color string) {
	r.dc.SetHexColor(color)
	r.dc.Clear()
}

func (r *rasterSurface) SetFill(color string)   { r.fill = color }
func (r *rasterSurface) ClearFill()             { r.fill = "" }
func (r *rasterSurface) SetStroke(color string) { r.stroke = color }
func (r *rasterSurface) ClearStroke()           { r.stroke = "" }

func (r *rasterSurface) SetFont(size float64) {
	r.fontSize = size
}

func (r *rasterSurface) SetTextAlign(h chart.HAlign, v chart.VAlign) {
	r.hAlign = h
	r.vAlign = v
}

func (r *rasterSurface) Text(x, y float64, s string) {
	if r.fill == "" {
		return
	}
	face, err := fonts.Regular(r.fontSize)
	if err != nil {
		if r.err == nil {
			r.err = err
		}
		return
	}
	r.dc.SetFontFace(face)
	r.dc.SetHexColor(r.fill)
	r.dc.DrawStringAnchored(s, x, y, anchorX(r.hAlign), anchorY(r.vAlign))
}

func (r *rasterSurface) Line(x1, y1, x2, y2 float64) {
	if r.stroke == "" {
		return
	}
	r.dc.SetHexColor(r.stroke)
	r.dc.DrawLine(x1, y1, x2, y2)
	r.dc.Stroke()
}

func (r *rasterSurface) Ring(x, y, radius float64) {
	if r.stroke == "" {
		return
	}
	r.dc.SetHexColor(r.stroke)
	r.dc.DrawCircle(x, y, radius)
	r.dc.Stroke()
}

func (r *rasterSurface) Push()                    { r.dc.Push() }
func (r *rasterSurface) Pop()                     { r.dc.Pop() }
func (r *rasterSurface) Translate(dx, dy float64) { r.dc.Translate(dx, dy) }
func (r *rasterSurface) Rotate(degrees float64)   { r.dc.Rotate(gg.Radians(degrees)) }

// anchorX maps a horizontal alignment to gg's 0..1 anchor fraction.
func anchorX(h chart.HAlign) float64 {
	switch h {
	case chart.AlignCenter:
		return 0.5
	case chart.AlignRight:
		return 1
	default:
		return 0
	}
}

// anchorY maps a vertical alignment to gg's 0..1 anchor fraction, where 0
// leaves the baseline at the anchor and 1 hangs the text below it.
func anchorY(v chart.VAlign) float64 {
	switch v {
	case chart.AlignMiddle:
		return 0.5
	case chart.AlignTop:
		return 1
	default:
		return 0
	}
}
