package chart

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/errors"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/trips"
)

// logSurface records every drawing command as a formatted string so tests
// can assert on the exact command sequence.
type logSurface struct {
	ops []string
}

func (l *logSurface) op(format string, args ...any) {
	l.ops = append(l.ops, fmt.Sprintf(format, args...))
}

func (l *logSurface) Clear(color string)              { l.op("clear %s", color) }
func (l *logSurface) SetFill(color string)            { l.op("fill %s", color) }
func (l *logSurface) ClearFill()                      { l.op("fill off") }
func (l *logSurface) SetStroke(color string)          { l.op("stroke %s", color) }
func (l *logSurface) ClearStroke()                    { l.op("stroke off") }
func (l *logSurface) SetFont(size float64)            { l.op("font %.1f", size) }
func (l *logSurface) SetTextAlign(h HAlign, v VAlign) { l.op("align %s %s", h, v) }
func (l *logSurface) Text(x, y float64, s string)     { l.op("text %.2f %.2f %q", x, y, s) }
func (l *logSurface) Line(x1, y1, x2, y2 float64)     { l.op("line %.2f %.2f %.2f %.2f", x1, y1, x2, y2) }
func (l *logSurface) Ring(x, y, radius float64)       { l.op("ring %.2f %.2f %.2f", x, y, radius) }
func (l *logSurface) Push()                           { l.op("push") }
func (l *logSurface) Pop()                            { l.op("pop") }
func (l *logSurface) Translate(dx, dy float64)        { l.op("translate %.2f %.2f", dx, dy) }
func (l *logSurface) Rotate(degrees float64)          { l.op("rotate %.4f", degrees) }

func testRecords() []trips.Station {
	return []trips.Station{
		{Name: "Ashby", Code: "AS", Count: 2500},
		{Name: "MacArthur", Code: "MA", Count: 7000},
		{Name: "Embarcadero", Code: "EM", Count: 10000},
	}
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(DefaultConfig())
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}
	return r
}

func TestRenderCommandSequence(t *testing.T) {
	r := newTestRenderer(t)
	s := &logSurface{}

	if err := r.Render(s, testRecords()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// The pass starts by clearing to the background color.
	if s.ops[0] != "clear #EAEAEA" {
		t.Errorf("ops[0] = %q, want %q", s.ops[0], "clear #EAEAEA")
	}

	// Title near the bottom edge, centered.
	if !contains(s.ops, `text 300.00 580.00 "Bart trips from Downtown Berkeley to other stations in March 2024."`) {
		t.Error("missing title text command")
	}

	// Origin label at the recentered origin.
	if !contains(s.ops, `text 0.00 0.00 "Berkeley"`) {
		t.Error("missing origin label command")
	}
}

func TestRenderRings(t *testing.T) {
	r := newTestRenderer(t)
	s := &logSurface{}

	if err := r.Render(s, testRecords()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// max=10000, step=5000: the maximum lands exactly on a tick, so the
	// ticks are 0, 5000, 10000 and the outermost ring sits at MaxLen.
	rings := ringOps(s.ops)
	if len(rings) != 3 {
		t.Fatalf("ring count = %d, want 3: %v", len(rings), rings)
	}

	// Tick radii follow the length mapping: L(0)=70, L(10000)=210.
	if rings[0] != "ring 0.00 0.00 70.00" {
		t.Errorf("rings[0] = %q, want radius 70", rings[0])
	}
	if rings[2] != "ring 0.00 0.00 210.00" {
		t.Errorf("rings[2] = %q, want radius 210", rings[2])
	}

	// Tick labels are thousands-formatted and sit at (radius, 0).
	if !contains(s.ops, `text 210.00 0.00 "10,000"`) {
		t.Error("missing formatted tick label at the maximum ring")
	}
}

func TestRenderRingsPastMaximum(t *testing.T) {
	r := newTestRenderer(t)
	s := &logSurface{}
	records := []trips.Station{
		{Name: "Ashby", Code: "AS", Count: 2500},
		{Name: "Embarcadero", Code: "EM", Count: 12000},
	}

	if err := r.Render(s, records); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// max=12000, step=5000: the maximum falls between ticks, so the loop
	// runs one increment past it and the ticks are 0, 5000, 10000, 15000.
	rings := ringOps(s.ops)
	if len(rings) != 4 {
		t.Fatalf("ring count = %d, want 4: %v", len(rings), rings)
	}

	// The outermost ring extrapolates past MaxLen: L(15000) = 245.
	if rings[3] != "ring 0.00 0.00 245.00" {
		t.Errorf("rings[3] = %q, want radius 245", rings[3])
	}
	if !contains(s.ops, `text 245.00 0.00 "15,000"`) {
		t.Error("missing tick label one increment past the maximum")
	}
}

func ringOps(ops []string) []string {
	var rings []string
	for _, op := range ops {
		if strings.HasPrefix(op, "ring ") {
			rings = append(rings, op)
		}
	}
	return rings
}

func TestRenderSpokes(t *testing.T) {
	r := newTestRenderer(t)
	s := &logSurface{}
	records := testRecords()

	if err := r.Render(s, records); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// 3 records partition the circle into 4 lanes of 90 degrees, rotated
	// cumulatively.
	var rotations []string
	for _, op := range s.ops {
		if strings.HasPrefix(op, "rotate ") {
			rotations = append(rotations, op)
		}
	}
	if len(rotations) != 3 {
		t.Fatalf("rotation count = %d, want 3", len(rotations))
	}
	for _, rot := range rotations {
		if rot != "rotate 90.0000" {
			t.Errorf("rotation = %q, want %q", rot, "rotate 90.0000")
		}
	}

	// Records arrive sorted ascending, so the spoke lengths are L(2500)=105,
	// L(7000)=168, L(10000)=210, each drawn from MinLen outward.
	wantLines := []string{
		"line 70.00 0.00 105.00 0.00",
		"line 70.00 0.00 168.00 0.00",
		"line 70.00 0.00 210.00 0.00",
	}
	var lines []string
	for _, op := range s.ops {
		if strings.HasPrefix(op, "line ") {
			lines = append(lines, op)
		}
	}
	if len(lines) != len(wantLines) {
		t.Fatalf("line count = %d, want %d", len(lines), len(wantLines))
	}
	for i, want := range wantLines {
		if lines[i] != want {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want)
		}
	}

	// Name labels sit just past the spoke's outer end.
	if !contains(s.ops, `text 212.00 0.00 "Embarcadero"`) {
		t.Error("missing station name label past the longest spoke")
	}
}

func TestRenderTransformDiscipline(t *testing.T) {
	r := newTestRenderer(t)
	s := &logSurface{}

	if err := r.Render(s, testRecords()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// Rings and spokes each scope their frame change: two balanced
	// push/pop pairs, never nested.
	depth, pushes := 0, 0
	for _, op := range s.ops {
		switch op {
		case "push":
			depth++
			pushes++
			if depth > 1 {
				t.Fatal("nested push; ring and spoke passes must restore the frame before the next pass")
			}
		case "pop":
			depth--
			if depth < 0 {
				t.Fatal("pop without matching push")
			}
		}
	}
	if depth != 0 {
		t.Errorf("unbalanced transform stack: depth %d after render", depth)
	}
	if pushes != 2 {
		t.Errorf("push count = %d, want 2", pushes)
	}
}

func TestRenderIdempotent(t *testing.T) {
	r := newTestRenderer(t)
	records := testRecords()

	first := &logSurface{}
	if err := r.Render(first, records); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	second := &logSurface{}
	if err := r.Render(second, records); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if len(first.ops) != len(second.ops) {
		t.Fatalf("command counts differ: %d vs %d", len(first.ops), len(second.ops))
	}
	for i := range first.ops {
		if first.ops[i] != second.ops[i] {
			t.Fatalf("ops[%d] differs: %q vs %q", i, first.ops[i], second.ops[i])
		}
	}
}

func TestRenderErrors(t *testing.T) {
	r := newTestRenderer(t)

	t.Run("empty dataset", func(t *testing.T) {
		err := r.Render(&logSurface{}, nil)
		if !errors.Is(err, errors.ErrCodeEmptyDataset) {
			t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeEmptyDataset)
		}
	})

	t.Run("all counts zero", func(t *testing.T) {
		records := []trips.Station{
			{Name: "a", Code: "aa", Count: 0},
			{Name: "b", Code: "bb", Count: 0},
		}
		err := r.Render(&logSurface{}, records)
		if !errors.Is(err, errors.ErrCodeDegenerateDataset) {
			t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeDegenerateDataset)
		}
	})
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{15000, "15,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatThousands(tt.n); got != tt.want {
			t.Errorf("FormatThousands(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func contains(ops []string, want string) bool {
	for _, op := range ops {
		if op == want {
			return true
		}
	}
	return false
}
