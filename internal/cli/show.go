package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tabgrid/pkg/core/editor"
	"github.com/matzehuels/tabgrid/pkg/core/grid"
	"github.com/matzehuels/tabgrid/pkg/core/layout"
	"github.com/matzehuels/tabgrid/pkg/core/widget"
	"github.com/matzehuels/tabgrid/pkg/settings"
)

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var (
		density string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored layout",
		Long: `Show the stored layout.

Without --density the active layout is shown. Passing a density previews its
layout without switching to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			doc, err := store.Get(cmd.Context())
			if err != nil {
				return err
			}

			d := doc.Move.Selection
			if density != "" {
				if d, err = layout.ParseDensity(density); err != nil {
					return err
				}
			}
			l := doc.Move.LayoutFor(d)

			if asJSON {
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(l)
			}

			printKeyValue("Store", settings.Describe(store))
			printKeyValue("Density", string(d))
			printKeyValue("Widgets", joinIDs(doc.Enabled()))
			printNewline()
			fmt.Fprintln(stdout, renderGrid(l.Grid, ""))
			printDetail("%s", grid.String(l.Grid))
			return nil
		},
	}

	cmd.Flags().StringVarP(&density, "density", "d", "", "density to show (default: active)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")
	_ = cmd.RegisterFlagCompletionFunc("density", fixedCompletion(densityNames()...))

	return cmd
}

// printLayout prints the grid of v with the selected widget highlighted,
// followed by the selection details.
func printLayout(v editor.View) {
	printNewline()
	fmt.Fprintln(stdout, renderGrid(v.Grid, v.Selected))
	printDetail("%s  %s", v.Density, v.Areas)
	if v.Selected == "" {
		return
	}
	if v.Align != nil {
		printDetail("align: box %s, text %s", v.Align.Box, v.Align.Text)
	}
	if v.Bounds != nil {
		printDetail("edges: %s", edges(*v.Bounds))
	}
}

// =============================================================================
// Grid Preview
// =============================================================================

const cellWidth = 12

// renderGrid draws g as a table, one cell per grid cell. Cells of the
// selected widget are shown in reverse video.
func renderGrid(g grid.Grid, selected widget.ID) string {
	if g.Height() == 0 {
		return StyleDim.Render("(empty grid)")
	}

	rows := make([][]string, len(g))
	for r, row := range g {
		rows[r] = make([]string, len(row))
		for c, cell := range row {
			if cell == grid.Empty {
				rows[r][c] = "·"
			} else {
				rows[r][c] = cell
			}
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		BorderRow(true).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
			if row < 0 || row >= len(g) || col >= len(g[row]) {
				return base
			}
			id := widget.ID(g[row][col])
			if id == grid.Empty {
				return base.Foreground(colorDim)
			}
			if color, ok := widgetColors[id]; ok {
				base = base.Foreground(color)
			}
			if id == selected {
				base = base.Reverse(true).Bold(true)
			}
			return base
		})

	return t.Render()
}

func edges(b grid.Bounds) string {
	var parts []string
	for _, e := range []struct {
		name string
		on   bool
	}{{"top", b.Top}, {"bottom", b.Bottom}, {"left", b.Left}, {"right", b.Right}} {
		if e.on {
			parts = append(parts, e.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func joinIDs(ids []widget.ID) string {
	if len(ids) == 0 {
		return "none"
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}
