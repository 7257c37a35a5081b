package sink

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/chart"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/errors"
)

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(testRecords(), chart.DefaultConfig())
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 600 || bounds.Dy() != 600 {
		t.Errorf("image size = %dx%d, want 600x600", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderPNGScale(t *testing.T) {
	data, err := RenderPNG(testRecords(), chart.DefaultConfig(), WithScale(2.0))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 1200 || bounds.Dy() != 1200 {
		t.Errorf("image size = %dx%d, want 1200x1200", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderPNGDeterministic(t *testing.T) {
	cfg := chart.DefaultConfig()
	records := testRecords()

	first, err := RenderPNG(records, cfg)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	second, err := RenderPNG(records, cfg)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("repeated renders produced different PNG bytes")
	}
}

func TestRenderPNGBackgroundColor(t *testing.T) {
	data, err := RenderPNG(testRecords(), chart.DefaultConfig())
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}

	// The top-left corner is outside every chart element, so it holds the
	// background fill #EAEAEA.
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 0xEA || g>>8 != 0xEA || b>>8 != 0xEA {
		t.Errorf("corner pixel = #%02X%02X%02X, want #EAEAEA", r>>8, g>>8, b>>8)
	}
}

func TestRenderPNGErrors(t *testing.T) {
	cfg := chart.DefaultConfig()

	if _, err := RenderPNG(nil, cfg); !errors.Is(err, errors.ErrCodeEmptyDataset) {
		t.Errorf("empty dataset: error code = %v, want %v", errors.GetCode(err), errors.ErrCodeEmptyDataset)
	}

	cfg.Background = "sky blue"
	if _, err := RenderPNG(testRecords(), cfg); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("bad config: error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}
