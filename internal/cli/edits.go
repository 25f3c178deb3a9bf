package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tabgrid/pkg/core/editor"
	"github.com/matzehuels/tabgrid/pkg/core/grid"
	"github.com/matzehuels/tabgrid/pkg/core/layout"
	"github.com/matzehuels/tabgrid/pkg/core/widget"
	"github.com/matzehuels/tabgrid/pkg/errors"
)

// directions maps the move keywords to unit deltas.
var directions = map[string][2]int{
	"up":    {0, -1},
	"down":  {0, 1},
	"left":  {-1, 0},
	"right": {1, 0},
}

// moveCommand creates the move command.
func (c *CLI) moveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move <widget> <up|down|left|right> [steps]",
		Short: "Move a widget on the active grid",
		Long: `Move a widget on the active grid.

The widget swaps places with whatever sits on its destination. Moving against
an edge of the grid does nothing; moving down past the last row adds a row.`,
		Args:              cobra.RangeArgs(2, 3),
		ValidArgsFunction: completeWidgetThen("up", "down", "left", "right"),
		RunE: func(cmd *cobra.Command, args []string) error {
			dx, dy, err := parseDirection(args[1:])
			if err != nil {
				return err
			}
			return c.editSelected(cmd.Context(), args[0], func(s *editor.Session) error {
				if err := s.Move(dx, dy); err != nil {
					return err
				}
				printSuccess("Moved %s %s", args[0], args[1])
				return nil
			})
		},
	}
}

// parseDirection converts "<direction> [steps]" into a delta.
func parseDirection(args []string) (dx, dy int, err error) {
	d, ok := directions[strings.ToLower(args[0])]
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid direction %q (must be up, down, left or right)", args[0])
	}
	steps := 1
	if len(args) > 1 {
		steps, err = strconv.Atoi(args[1])
		if err != nil || steps < 1 {
			return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid step count %q", args[1])
		}
	}
	return d[0] * steps, d[1] * steps, nil
}

// spanCommand creates the span command.
func (c *CLI) spanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "span <widget> <col|row>",
		Short: "Toggle a widget's span along a column or a row",
		Long: `Toggle a widget's span.

A col span stretches the widget up and down its column, a row span left and
right across its row. Either stops at the first cell held by another widget.
Toggling again collapses the span. Spans are not available in the single
density.

Each invocation is a separate editing session, so a collapse keeps the
widget's top-left cell rather than the cell the span started from. The edit
command and the HTTP API remember the starting cell within a session.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeWidgetThen(string(grid.AxisCol), string(grid.AxisRow)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.editSelected(cmd.Context(), args[0], func(s *editor.Session) error {
				if err := s.ToggleSpan(grid.Axis(args[1])); err != nil {
					return err
				}
				printSuccess("Toggled %s span of %s", args[1], args[0])
				return nil
			})
		},
	}
}

// alignCommand creates the align command.
func (c *CLI) alignCommand() *cobra.Command {
	var box, text string

	cmd := &cobra.Command{
		Use:               "align <widget>",
		Short:             "Set a widget's box and text alignment",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeWidgetThen(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if box == "" && text == "" {
				return errors.New(errors.ErrCodeInvalidInput, "nothing to align: pass --box or --text")
			}
			return c.editSelected(cmd.Context(), args[0], func(s *editor.Session) error {
				if box != "" {
					if err := s.AlignBox(box); err != nil {
						return err
					}
				}
				if text != "" {
					if err := s.AlignText(text); err != nil {
						return err
					}
				}
				a, err := s.Align()
				if err != nil {
					return err
				}
				printSuccess("Aligned %s: box %s, text %s", args[0], a.Box, a.Text)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&box, "box", "", "box placement: start, center, end")
	cmd.Flags().StringVar(&text, "text", "", "text alignment: left, center, right")
	_ = cmd.RegisterFlagCompletionFunc("box", fixedCompletion(layout.BoxStart, layout.Center, layout.BoxEnd))
	_ = cmd.RegisterFlagCompletionFunc("text", fixedCompletion(layout.TextLeft, layout.Center, layout.TextRight))

	return cmd
}

// widgetCommand creates the widget command.
func (c *CLI) widgetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "widget <widget> <on|off>",
		Short: "Enable or disable a widget on the active grid",
		Long: `Enable or disable a widget.

An enabled widget is placed in the first free cell of the active grid, or on a
new row when the grid is full. A disabled widget is removed and the rows it
leaves empty are dropped.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeWidgetThen("on", "off"),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := parseSwitch(args[1])
			if err != nil {
				return err
			}
			return c.withSession(cmd.Context(), nil, func(s *editor.Session) error {
				if err := s.ToggleWidget(widgetID(args[0]), on); err != nil {
					return err
				}
				printSuccess("Turned %s %s", args[0], args[1])
				printLayout(s.View())
				return nil
			})
		},
	}
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, errors.New(errors.ErrCodeInvalidInput, "invalid switch %q (must be on or off)", s)
}

// densityCommand creates the density command.
func (c *CLI) densityCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "density [single|double|triple]",
		Short:     "Show or change the active density",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: densityNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd.Context(), nil, func(s *editor.Session) error {
				if len(args) == 0 {
					fmt.Fprintln(stdout, s.Density())
					return nil
				}
				if err := s.SetDensity(layout.Density(args[0])); err != nil {
					return err
				}
				printSuccess("Density is now %s", args[0])
				printLayout(s.View())
				return nil
			})
		},
	}
}

// resetCommand creates the reset command.
func (c *CLI) resetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Rebuild the active grid from the enabled widgets",
		Long: `Rebuild the active grid.

The enabled widgets are placed again in their standard order and every
alignment of the active density is cleared. Other densities are untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd.Context(), nil, func(s *editor.Session) error {
				if err := s.ResetLayout(); err != nil {
					return err
				}
				printSuccess("Reset the %s layout", s.Density())
				printLayout(s.View())
				return nil
			})
		},
	}
}

// =============================================================================
// Argument Helpers
// =============================================================================

func widgetID(s string) widget.ID { return widget.ID(strings.ToLower(s)) }

func widgetNames() []string {
	names := make([]string, len(widget.All))
	for i, id := range widget.All {
		names[i] = string(id)
	}
	return names
}

func densityNames() []string {
	names := make([]string, len(layout.Densities))
	for i, d := range layout.Densities {
		names[i] = string(d)
	}
	return names
}
