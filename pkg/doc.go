// Package pkg provides the core libraries for the bartviz radial trip chart.
//
// # Overview
//
// Bartviz draws monthly BART ridership from one origin station as lines
// radiating from a center point, scaled by trip count, with concentric
// reference rings at fixed count increments. The pkg directory is organized
// into a small set of focused packages:
//
//  1. [trips] - Dataset loading (CSV parsing, sorting, JSON export)
//  2. [chart] - Radial layout, scale mapping, and the abstract drawing surface
//  3. [chart/sink] - Output backends (PNG raster via fogleman/gg, hand-written SVG)
//  4. [viewer] - Interactive desktop window built on ebiten
//  5. [pipeline] - Orchestration (load → render → artifacts) shared by CLI commands
//  6. [fonts] - Embedded Go font faces for raster text
//  7. [errors] - Coded errors with user-facing messages
//  8. [buildinfo] - ldflags-injected version information
//
// # Architecture
//
// The typical data flow:
//
//	CSV dataset
//	     ↓
//	[trips] package (parse, validate, sort ascending by count)
//	     ↓
//	[chart] package (scale counts to lengths, issue drawing commands)
//	     ↓
//	[chart/sink] or [viewer] (PNG / SVG / window)
//
// # Quick Start
//
// Load a dataset and render it to PNG bytes:
//
//	import (
//	    "github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/chart"
//	    "github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/chart/sink"
//	    "github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/trips"
//	)
//
//	records, _ := trips.LoadFile("berkeley_trips.csv")
//	png, _ := sink.RenderPNG(records, chart.DefaultConfig())
//
// Or run the full pipeline the way the CLI does:
//
//	runner := pipeline.NewRunner(logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Input:   "berkeley_trips.csv",
//	    Formats: []string{pipeline.FormatPNG, pipeline.FormatSVG},
//	})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/chart/...    # Specific package
//
// [trips]: https://pkg.go.dev/github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/trips
// [chart]: https://pkg.go.dev/github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/chart
// [chart/sink]: https://pkg.go.dev/github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/chart/sink
// [viewer]: https://pkg.go.dev/github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/viewer
// [pipeline]: https://pkg.go.dev/github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/pipeline
// [fonts]: https://pkg.go.dev/github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/fonts
// [errors]: https://pkg.go.dev/github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/buildinfo
package pkg
