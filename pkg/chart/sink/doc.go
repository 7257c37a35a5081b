// Package sink renders charts to concrete output formats.
//
// Two backends implement [chart.Surface]: a raster backend over fogleman/gg
// producing PNG bytes, and a hand-written SVG backend producing vector
// output with the same drawing semantics. Both are driven by the same
// chart.Renderer pass, so the formats stay visually consistent.
package sink
