package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/CuriBio/labware-domain-models/pkg/labware"
)

// Browser styles
var (
	browseSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browseNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	browseDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command, an interactive plate viewer.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		plate plateFlags
		cs    labware.CoordinateSystem
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a plate interactively",
		Long: `Browse a plate interactively.

Arrow keys (or hjkl) move the well cursor; the status area shows the
selected well's name, column-major index, and physical coordinates
where the definition carries the geometry to compute them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := plate.resolve()
			if err != nil {
				return err
			}
			if err := def.ValidateCounts(); err != nil {
				return err
			}
			model := newBrowseModel(def, cs)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	plate.register(cmd)
	cmd.Flags().BoolVar(&cs.ZPointsUp, "z-up", false, "outer frame z-axis points up")

	return cmd
}

// browseModel is the bubbletea model for the interactive plate viewer.
type browseModel struct {
	def    *labware.Definition
	cs     labware.CoordinateSystem
	rows   int
	cols   int
	curRow int
	curCol int
}

func newBrowseModel(def *labware.Definition, cs labware.CoordinateSystem) browseModel {
	return browseModel{
		def:  def,
		cs:   cs,
		rows: *def.RowCount,
		cols: *def.ColumnCount,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.curRow > 0 {
				m.curRow--
			}
		case "down", "j":
			if m.curRow < m.rows-1 {
				m.curRow++
			}
		case "left", "h":
			if m.curCol > 0 {
				m.curCol--
			}
		case "right", "l":
			if m.curCol < m.cols-1 {
				m.curCol++
			}
		case "home", "g":
			m.curRow, m.curCol = 0, 0
		case "end", "G":
			m.curRow, m.curCol = m.rows-1, m.cols-1
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	title := m.def.Name
	if title == "" {
		title = fmt.Sprintf("%dx%d plate", m.rows, m.cols)
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render("↑/↓/←/→ move  g/G corners  q quit"))
	b.WriteString("\n\n")

	pad := m.cols > 10
	for r := 0; r < m.rows; r++ {
		for col := 0; col < m.cols; col++ {
			name, err := m.def.WellName(r, col, pad)
			if err != nil {
				name = "?"
			}
			cell := fmt.Sprintf("%4s", name)
			if r == m.curRow && col == m.curCol {
				b.WriteString(browseSelectedStyle.Render(cell))
			} else {
				b.WriteString(browseNormalStyle.Render(cell))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	return b.String()
}

// status renders the detail lines for the selected well. Geometry that
// the definition does not carry is reported as unavailable rather than
// failing the whole view.
func (m browseModel) status() string {
	var b strings.Builder

	name, err := m.def.WellName(m.curRow, m.curCol, false)
	if err != nil {
		name = "?"
	}
	index, err := m.def.WellIndex(m.curRow, m.curCol)
	if err != nil {
		index = -1
	}
	b.WriteString(browseSelectedStyle.Render(name))
	b.WriteString(browseDimStyle.Render(fmt.Sprintf("  row %d, column %d, index %d", m.curRow, m.curCol, index)))
	b.WriteString("\n")

	if center, err := m.def.WellPosition(m.curRow, m.curCol, 0, 0); err == nil {
		b.WriteString(browseNormalStyle.Render(fmt.Sprintf("center (%g, %g) mm", center.X, center.Y)))
	} else {
		b.WriteString(browseDimStyle.Render("center unavailable: " + err.Error()))
	}
	b.WriteString("\n")

	if vec, err := m.def.TopOfWell(m.curRow, m.curCol, m.cs, 0, 0, 0); err == nil {
		b.WriteString(browseNormalStyle.Render(fmt.Sprintf("top    (%g, %g, %g) mm", vec.X, vec.Y, vec.Z)))
	} else {
		b.WriteString(browseDimStyle.Render("top unavailable: " + err.Error()))
	}
	return b.String()
}
