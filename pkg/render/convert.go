package render

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"

	"github.com/matzehuels/tabgrid/pkg/errors"
)

// Raster is an output format produced from SVG by rsvg-convert.
type Raster string

const (
	PDF Raster = "pdf"
	PNG Raster = "png"
)

const rsvgConvert = "rsvg-convert"

// Available reports whether rsvg-convert is on PATH.
func Available() bool {
	_, err := exec.LookPath(rsvgConvert)
	return err == nil
}

// Rasterize converts svg to format. Scale only applies to PNG, where 2.0
// doubles the resolution; non-positive scales mean 1.
//
// A missing rsvg-convert is reported as UNSUPPORTED with install hints.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func Rasterize(ctx context.Context, svg []byte, format Raster, scale float64) ([]byte, error) {
	args := []string{"-f", string(format)}
	switch format {
	case PDF:
	case PNG:
		if scale <= 0 {
			scale = 1
		}
		args = append(args, "-z", strconv.FormatFloat(scale, 'f', 2, 64))
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown raster format %q", format)
	}
	if !Available() {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export requires librsvg (macOS: brew install librsvg, Linux: apt install librsvg2-bin)", format)
	}

	cmd := exec.CommandContext(ctx, rsvgConvert, args...)
	cmd.Stdin = bytes.NewReader(svg)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rsvg-convert %s: %s", format, bytes.TrimSpace(stderr.Bytes()))
	}
	return out.Bytes(), nil
}
