package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/matzehuels/tabgrid/pkg/errors"
)

const square = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`

func TestRasterize(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}

	tests := []struct {
		format Raster
		scale  float64
		magic  string
	}{
		{PDF, 0, "%PDF"},
		{PNG, 0, "\x89PNG"},
		{PNG, 2, "\x89PNG"},
	}
	for _, tt := range tests {
		out, err := Rasterize(context.Background(), []byte(square), tt.format, tt.scale)
		if err != nil {
			t.Fatalf("Rasterize(%s): %v", tt.format, err)
		}
		if !bytes.HasPrefix(out, []byte(tt.magic)) {
			t.Errorf("Rasterize(%s) output does not start with %q", tt.format, tt.magic)
		}
	}
}

func TestRasterizeUnknownFormat(t *testing.T) {
	_, err := Rasterize(context.Background(), []byte(square), "gif", 1)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Rasterize(gif) error = %v, want INVALID_INPUT", err)
	}
}

func TestRasterizeMissingTool(t *testing.T) {
	if Available() {
		t.Skip("rsvg-convert installed")
	}
	_, err := Rasterize(context.Background(), []byte(square), PDF, 1)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Rasterize without rsvg-convert error = %v, want UNSUPPORTED", err)
	}
}
