package chart

// HAlign is the horizontal anchor for drawn text.
type HAlign string

// VAlign is the vertical anchor for drawn text.
type VAlign string

// Text alignment anchors.
const (
	AlignLeft   HAlign = "left"
	AlignCenter HAlign = "center"
	AlignRight  HAlign = "right"

	AlignTop    VAlign = "top"
	AlignMiddle VAlign = "middle"
	AlignBottom VAlign = "bottom"
)

// Surface is the set of drawing primitives the renderer needs. Any backend
// that implements these can display a chart; the raster and SVG sinks and
// the interactive viewer all satisfy it. Colors are hex strings such as
// "#333333".
//
// Fill and stroke are modal: text and rings are filled or stroked with the
// most recently set color, and ClearFill/ClearStroke disable the respective
// channel. Translate and Rotate compose onto the current transform; Push
// and Pop save and restore it, and implementations must support nesting.
type Surface interface {
	// Clear fills the whole surface with a color, discarding prior drawing.
	Clear(color string)

	SetFill(color string)
	ClearFill()
	SetStroke(color string)
	ClearStroke()

	// SetFont selects the font size in points for subsequent Text calls.
	SetFont(size float64)
	// SetTextAlign sets how Text positions relative to its anchor point.
	SetTextAlign(h HAlign, v VAlign)
	// Text draws s anchored at (x, y) in the current frame.
	Text(x, y float64, s string)

	// Line draws a stroked segment between two points.
	Line(x1, y1, x2, y2 float64)
	// Ring draws an unfilled circle outline of the given radius centered
	// at (x, y).
	Ring(x, y, radius float64)

	// Push saves the current transform; Pop restores the most recently
	// saved one.
	Push()
	Pop()
	// Translate moves the origin of the current frame by (dx, dy).
	Translate(dx, dy float64)
	// Rotate turns the current frame by degrees, clockwise positive.
	Rotate(degrees float64)
}
