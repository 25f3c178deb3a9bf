package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tabgrid/pkg/core/editor"
	"github.com/matzehuels/tabgrid/pkg/core/grid"
	"github.com/matzehuels/tabgrid/pkg/core/layout"
	"github.com/matzehuels/tabgrid/pkg/core/widget"
	"github.com/matzehuels/tabgrid/pkg/errors"
	"github.com/matzehuels/tabgrid/pkg/render/css"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	statusErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// editCommand creates the interactive editor command.
func (c *CLI) editCommand() *cobra.Command {
	var cssPath string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the layout interactively",
		Long: `Open the layout toolbox in the terminal.

Outside editing mode the toolbox lists the widgets: move the cursor with the
arrow keys, toggle a widget with space, switch density with 1, 2 and 3.
Press e to start editing: tab cycles the selected widget, the arrow keys move
it, c and r toggle its column and row span, b and t cycle its alignment.

Every change is saved as it happens. With --css the stylesheet is written
again after every change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet := css.NewSheet()
			surface := editorSurface(sheet, cssPath, loggerFromContext(cmd.Context()))
			return c.withSession(cmd.Context(), surface, func(s *editor.Session) error {
				p := tea.NewProgram(NewEditorModel(s, sheet), tea.WithContext(cmd.Context()))
				_, err := p.Run()
				return err
			})
		},
	}

	cmd.Flags().StringVar(&cssPath, "css", "", "rewrite this stylesheet after every change")

	return cmd
}

// editorSurface returns the surface of the interactive editor: sheet, plus a
// stylesheet file at cssPath when one is given.
func editorSurface(sheet *css.Sheet, cssPath string, logger *log.Logger) editor.Surface {
	if cssPath == "" {
		return sheet
	}
	return editor.MultiSurface{sheet, &cssFile{path: cssPath, sheet: sheet, logger: logger}}
}

// cssFile rewrites a stylesheet file whenever the layout changes. It is
// placed after the sheet it reads in a MultiSurface. A failing write is
// logged once, and again when writes succeed after it.
type cssFile struct {
	path   string
	sheet  *css.Sheet
	logger *log.Logger
	failed bool
}

func (f *cssFile) ApplyGrid(string)                   { f.write() }
func (f *cssFile) ApplyAlign(widget.ID, layout.Align) { f.write() }

func (f *cssFile) write() {
	err := os.WriteFile(f.path, []byte(f.sheet.String()), 0o644)
	switch {
	case err != nil && !f.failed:
		f.logger.Warn("cannot write stylesheet", "path", f.path, "err", err)
	case err == nil && f.failed:
		f.logger.Info("stylesheet written again", "path", f.path)
	}
	f.failed = err != nil
}

// =============================================================================
// EditorModel - Interactive layout toolbox
// =============================================================================

// EditorModel is the bubbletea model of the layout toolbox.
type EditorModel struct {
	Session *editor.Session
	Sheet   *css.Sheet
	// Cursor indexes widget.All in the toolbox list.
	Cursor int
	Status string
	Err    error
}

// NewEditorModel creates a toolbox over s. sheet, when set, is the surface
// of s and its grid is shown in the footer.
func NewEditorModel(s *editor.Session, sheet *css.Sheet) EditorModel {
	return EditorModel{Session: s, Sheet: sheet}
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.Status, m.Err = "", nil

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "1", "2", "3":
		d := layout.Densities[key.String()[0]-'1']
		m.Err = m.Session.SetDensity(d)
		return m, nil
	case "R":
		m.reset()
		return m, nil
	}

	if m.Session.Editing() {
		m.updateEditing(key.String())
	} else {
		m.updateToolbox(key.String())
	}
	return m, nil
}

// updateToolbox handles keys outside editing mode.
func (m *EditorModel) updateToolbox(key string) {
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(widget.All)-1 {
			m.Cursor++
		}
	case " ", "enter":
		id := widget.All[m.Cursor]
		on := !slices.Contains(m.Session.Enabled(), id)
		m.Err = m.Session.ToggleWidget(id, on)
	case "e":
		m.Session.StartEditing()
		m.cycle(1)
	}
}

// updateEditing handles keys in editing mode.
func (m *EditorModel) updateEditing(key string) {
	switch key {
	case "e":
		m.Session.StopEditing()
	case "esc":
		if m.Session.Selected() != "" {
			m.Session.Deselect()
		} else {
			m.Session.StopEditing()
		}
	case "tab":
		m.cycle(1)
	case "shift+tab":
		m.cycle(-1)
	case "up", "k":
		m.Err = m.Session.Move(0, -1)
	case "down", "j":
		m.Err = m.Session.Move(0, 1)
	case "left", "h":
		m.Err = m.Session.Move(-1, 0)
	case "right", "l":
		m.Err = m.Session.Move(1, 0)
	case "c":
		m.Err = m.Session.ToggleSpan(grid.AxisCol)
	case "r":
		m.Err = m.Session.ToggleSpan(grid.AxisRow)
	case "b":
		m.Err = m.cycleAlign(boxOrder, func(a layout.Align) string { return a.Box }, m.Session.AlignBox)
	case "t":
		m.Err = m.cycleAlign(textOrder, func(a layout.Align) string { return a.Text }, m.Session.AlignText)
	}
}

// cycle selects the next (or previous) widget on the grid.
func (m *EditorModel) cycle(step int) {
	ids := m.Session.Layout().Widgets()
	if len(ids) == 0 {
		m.Status = "the grid is empty"
		return
	}
	i := slices.Index(ids, m.Session.Selected())
	switch {
	case i < 0 && step < 0:
		i = len(ids) - 1
	case i < 0:
		i = 0
	default:
		i = (i + step + len(ids)) % len(ids)
	}
	m.Err = m.Session.Select(ids[i])
}

var (
	boxOrder  = []string{layout.Center, layout.BoxEnd, layout.BoxStart}
	textOrder = []string{layout.Center, layout.TextRight, layout.TextLeft}
)

func (m *EditorModel) cycleAlign(order []string, get func(layout.Align) string, set func(string) error) error {
	a, err := m.Session.Align()
	if err != nil {
		return err
	}
	i := slices.Index(order, get(a))
	return set(order[(i+1)%len(order)])
}

// reset asks for confirmation on the first press and resets on a second
// press within the confirmation window.
func (m *EditorModel) reset() {
	done, err := m.Session.RequestReset()
	switch {
	case err != nil:
		m.Err = err
	case done:
		m.Status = "layout reset"
	default:
		m.Status = fmt.Sprintf("press R again within %s to reset the %s layout", editor.ResetConfirmWindow, m.Session.Density())
	}
}

func (m EditorModel) View() string {
	v := m.Session.View()
	var b strings.Builder

	title := "Layout"
	if v.Editing {
		title = "Layout · editing"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString(StyleDim.Render("  " + string(v.Density)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		renderGrid(v.Grid, v.Selected), "  ", m.panel(v)))
	b.WriteString("\n\n")

	switch {
	case m.Err != nil:
		b.WriteString(statusErrorStyle.Render(iconError + " " + errors.UserMessage(m.Err)))
	case m.Status != "":
		b.WriteString(StyleHighlight.Render(iconInfo + " " + m.Status))
	case m.Sheet != nil:
		b.WriteString(StyleDim.Render("--grid: " + m.Sheet.Areas()))
	}
	b.WriteString("\n")
	b.WriteString(m.help(v.Editing))

	return b.String()
}

// panel is the widget list outside editing mode and the selection details
// inside it.
func (m EditorModel) panel(v editor.View) string {
	var b strings.Builder
	if !v.Editing {
		for i, id := range widget.All {
			cursor := "  "
			if i == m.Cursor {
				cursor = "▸ "
			}
			mark := "○"
			if slices.Contains(v.Enabled, id) {
				mark = StyleSuccess.Render("●")
			}
			line := fmt.Sprintf("%s%s %s", cursor, mark, id)
			if i == m.Cursor {
				b.WriteString(listSelectedStyle.Render(line))
			} else {
				b.WriteString(listNormalStyle.Render(line))
			}
			b.WriteString("\n")
		}
		return b.String()
	}

	if v.Selected == "" {
		return listDimStyle.Render("tab to select a widget")
	}
	b.WriteString(listSelectedStyle.Render(string(v.Selected)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("edges  " + edges(*v.Bounds)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("box    %s", v.Align.Box)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("text   %s", v.Align.Text)))
	b.WriteString("\n")
	if v.Density.CanSpan() {
		b.WriteString(listDimStyle.Render("span   " + spanLabel("col", v.Spans.Col) + " " + spanLabel("row", v.Spans.Row)))
		b.WriteString("\n")
	}
	return b.String()
}

func spanLabel(name string, s editor.SpanButton) string {
	switch {
	case s.Selected:
		return StyleHighlight.Render("[" + name + "]")
	case !s.Enabled:
		return StyleDim.Render(" " + name + " ")
	}
	return " " + name + " "
}

func (m EditorModel) help(editing bool) string {
	keys := [][2]string{{"↑/↓", "cursor"}, {"space", "toggle"}, {"1-3", "density"}, {"e", "edit"}, {"R", "reset"}, {"q", "quit"}}
	if editing {
		keys = [][2]string{{"tab", "select"}, {"arrows", "move"}, {"c/r", "span"}, {"b/t", "align"}, {"esc", "back"}, {"q", "quit"}}
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = StyleKey.Render(k[0]) + " " + listDimStyle.Render(k[1])
	}
	return strings.Join(parts, "  ")
}
