package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tabgrid/pkg/core/layout"
	"github.com/matzehuels/tabgrid/pkg/errors"
	"github.com/matzehuels/tabgrid/pkg/render"
	"github.com/matzehuels/tabgrid/pkg/render/css"
	"github.com/matzehuels/tabgrid/pkg/render/dot"
)

// Output formats of the render command.
const (
	formatCSS = "css"
	formatDOT = "dot"
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file, or base path for several formats
	formats  []string // css, dot, svg, pdf, png
	density  string   // density to render (default: active)
	detailed bool     // handles and alignments in diagrams
	scale    float64  // PNG scale factor
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: 2}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export the layout as a stylesheet or a diagram",
		Long: `Export the stored layout.

The css format is the stylesheet the new-tab page applies: the grid in the
--grid custom property and one rule per widget. The dot, svg, pdf and png
formats draw the grid as a diagram; pdf and png need rsvg-convert.

With one format and no --output the result goes to stdout. With several
formats, --output is the base path and each format gets its extension.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): css (default), dot, svg, pdf, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.density, "density", "d", "", "density to render (default: active)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show element handles and alignments in diagrams")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletion(formatCSS, formatDOT, formatSVG, formatPDF, formatPNG))
	_ = cmd.RegisterFlagCompletionFunc("density", fixedCompletion(densityNames()...))

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["css"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatCSS}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatCSS: true, formatDOT: true, formatSVG: true, formatPDF: true, formatPNG: true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'css', 'dot', 'svg', 'pdf', or 'png')", f)
		}
	}
	return nil
}

func (c *CLI) runRender(ctx context.Context, opts renderOpts) error {
	store, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	doc, err := store.Get(ctx)
	if err != nil {
		return err
	}
	d := doc.Move.Selection
	if opts.density != "" {
		if d, err = layout.ParseDensity(opts.density); err != nil {
			return err
		}
	}
	l := doc.Move.LayoutFor(d)

	toStdout := opts.output == "" && len(opts.formats) == 1
	for _, format := range opts.formats {
		data, err := c.renderFormat(ctx, l, d, format, opts)
		if errors.Is(err, errors.ErrCodeUnsupported) && !toStdout && len(opts.formats) > 1 {
			printWarning("Skipped %s: %s", format, errors.UserMessage(err))
			continue
		}
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if toStdout {
			_, err := stdout.Write(data)
			return err
		}

		path := outputPath(opts, format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printSuccess("Rendered %s", format)
		printFile(path)
	}
	return nil
}

// renderFormat produces one output. Diagram rendering runs Graphviz, which
// takes a moment to start, so it runs behind a spinner.
func (c *CLI) renderFormat(ctx context.Context, l layout.Layout, d layout.Density, format string, opts renderOpts) ([]byte, error) {
	if format == formatCSS {
		var b strings.Builder
		if _, err := css.FromLayout(l).WriteTo(&b); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	}

	src := dot.ToDOT(l, dot.Options{Title: string(d), Detailed: opts.detailed})
	if format == formatDOT {
		return []byte(src), nil
	}

	start := time.Now()
	var data []byte
	err := spin(ctx, fmt.Sprintf("Rendering %s...", format), func() (err error) {
		switch format {
		case formatSVG:
			data, err = dot.RenderSVG(src)
		case formatPDF:
			data, err = dot.Rasterize(ctx, src, render.PDF, 0)
		case formatPNG:
			data, err = dot.Rasterize(ctx, src, render.PNG, opts.scale)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	logElapsed(c.Logger, start, "rendered", "format", format, "bytes", len(data))
	return data, nil
}

// outputPath returns where format is written. A single format uses
// --output as given; otherwise the format is appended as the extension.
func outputPath(opts renderOpts, format string) string {
	base := opts.output
	if base == "" {
		base = appName
	}
	if len(opts.formats) == 1 && opts.output != "" {
		return opts.output
	}
	return strings.TrimSuffix(base, "."+format) + "." + format
}
