package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/chart"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/fonts"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/trips"
)

// RenderSVG draws records with the given configuration and returns the SVG
// document bytes.
func RenderSVG(records []trips.Station, cfg chart.Config) ([]byte, error) {
	r, err := chart.NewRenderer(cfg)
	if err != nil {
		return nil, err
	}

	surface := newSVGSurface(cfg.Width, cfg.Height)
	if err := r.Render(surface, records); err != nil {
		return nil, err
	}
	return surface.document(), nil
}

// svgSurface accumulates chart commands as SVG elements. The local
// coordinate frame is tracked as a stack of transform strings; each drawn
// element carries the accumulated transform of the frame it was drawn in.
type svgSurface struct {
	width, height float64
	body          bytes.Buffer
	transforms    []string
	fill          string
	stroke        string
	fontSize      float64
	hAlign        chart.HAlign
	vAlign        chart.VAlign
}

func newSVGSurface(width, height float64) *svgSurface {
	return &svgSurface{
		width:      width,
		height:     height,
		transforms: []string{""},
		hAlign:     chart.AlignLeft,
		vAlign:     chart.AlignBottom,
	}
}

func (s *svgSurface) document() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.width, s.height, s.width, s.height)
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (s *svgSurface) Clear(color string) {
	s.body.Reset()
	fmt.Fprintf(&s.body, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n", s.width, s.height, color)
}

func (s *svgSurface) SetFill(color string)   { s.fill = color }
func (s *svgSurface) ClearFill()             { s.fill = "" }
func (s *svgSurface) SetStroke(color string) { s.stroke = color }
func (s *svgSurface) ClearStroke()           { s.stroke = "" }

func (s *svgSurface) SetFont(size float64) {
	s.fontSize = size
}

func (s *svgSurface) SetTextAlign(h chart.HAlign, v chart.VAlign) {
	s.hAlign = h
	s.vAlign = v
}

func (s *svgSurface) Text(x, y float64, text string) {
	if s.fill == "" {
		return
	}
	var escaped bytes.Buffer
	_ = xml.EscapeText(&escaped, []byte(text))
	fmt.Fprintf(&s.body,
		`  <text x="%.2f" y="%.2f"%s font-family="%s" font-size="%.1f" text-anchor="%s" dominant-baseline="%s" fill="%s">%s</text>`+"\n",
		x, y, s.transformAttr(), fonts.FallbackFontFamily, s.fontSize,
		textAnchor(s.hAlign), dominantBaseline(s.vAlign), s.fill, escaped.String())
}

func (s *svgSurface) Line(x1, y1, x2, y2 float64) {
	if s.stroke == "" {
		return
	}
	fmt.Fprintf(&s.body, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"%s stroke="%s"/>`+"\n",
		x1, y1, x2, y2, s.transformAttr(), s.stroke)
}

func (s *svgSurface) Ring(x, y, radius float64) {
	if s.stroke == "" {
		return
	}
	fmt.Fprintf(&s.body, `  <circle cx="%.2f" cy="%.2f" r="%.2f"%s fill="none" stroke="%s"/>`+"\n",
		x, y, radius, s.transformAttr(), s.stroke)
}

func (s *svgSurface) Push() {
	s.transforms = append(s.transforms, s.current())
}

func (s *svgSurface) Pop() {
	if len(s.transforms) > 1 {
		s.transforms = s.transforms[:len(s.transforms)-1]
	}
}

func (s *svgSurface) Translate(dx, dy float64) {
	s.append(fmt.Sprintf("translate(%.2f %.2f)", dx, dy))
}

func (s *svgSurface) Rotate(degrees float64) {
	s.append(fmt.Sprintf("rotate(%.4f)", degrees))
}

func (s *svgSurface) current() string {
	return s.transforms[len(s.transforms)-1]
}

func (s *svgSurface) append(t string) {
	cur := s.current()
	if cur != "" {
		cur += " "
	}
	s.transforms[len(s.transforms)-1] = cur + t
}

func (s *svgSurface) transformAttr() string {
	cur := s.current()
	if cur == "" {
		return ""
	}
	return fmt.Sprintf(` transform="%s"`, cur)
}

func textAnchor(h chart.HAlign) string {
	switch h {
	case chart.AlignCenter:
		return "middle"
	case chart.AlignRight:
		return "end"
	default:
		return "start"
	}
}

func dominantBaseline(v chart.VAlign) string {
	switch v {
	case chart.AlignMiddle:
		return "central"
	case chart.AlignTop:
		return "hanging"
	default:
		return "alphabetic"
	}
}
