// Package viewer displays a rendered chart in a desktop window.
//
// The chart is a static snapshot: it is rasterized once up front and each
// frame just blits the same image, which is safe because rendering is a
// deterministic pass with no cross-frame state.
package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/chart"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/chart/sink"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/trips"
)

// Run opens a window showing the chart for records and blocks until the
// window is closed or Escape or Q is pressed.
func Run(records []trips.Station, cfg chart.Config) error {
	img, err := sink.RenderImage(records, cfg)
	if err != nil {
		return err
	}

	g := &game{
		chart:  ebiten.NewImageFromImage(img),
		width:  int(cfg.Width),
		height: int(cfg.Height),
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type game struct {
	chart  *ebiten.Image
	width  int
	height int
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.chart, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
