package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/tourneyclock/internal/chips"
	"github.com/lox/tourneyclock/internal/stats"
)

func (m *Model) renderOverview() string {
	s := m.settings
	rows := stats.ProjectAll(s.Schedule, s.Stack, s.BlindMinutes)
	plan := chips.NewPlan(s.Chips, s.Distributions.For(s.Stack), s.Players, s.PerColor)

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(s.Name))
	b.WriteString("  ")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("%d players · %d stack · %d min blinds",
		s.Players, s.Stack, s.BlindMinutes)))
	b.WriteString("\n\n")

	structure := StructureTable(rows, m.selected).String()
	side := lipgloss.JoinVertical(lipgloss.Left,
		m.renderSelected(rows),
		"",
		PlanTable(plan).String(),
		renderPlanSummary(plan),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, structure, "  ", side))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(WarningStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.overviewKeys))
	return b.String()
}

// StructureTable renders one row per level with its duration and derived
// stats. selected < 0 highlights nothing.
func StructureTable(rows []stats.Row, selected int) *table.Table {
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		row := []string{r.Level.Title(), "", strconv.Itoa(r.Minutes), "", "", ""}
		if r.Level.IsBreak() {
			row[1] = r.Level.Note
		} else {
			row[1] = r.Level.Blinds()
		}
		if r.Stats != nil {
			row[3] = strconv.Itoa(r.Stats.BigBlinds)
			if r.Low {
				row[3] += " !"
			}
			row[4] = strconv.Itoa(r.Stats.MinPot)
			row[5] = strconv.Itoa(r.Stats.MinRaise)
		}
		data = append(data, row)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(BorderColor)).
		Headers("LEVEL", "BLINDS", "MIN", "BB", "MIN POT", "MIN RAISE").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return CellStyle.Bold(true)
			case row == selected:
				return CellStyle.Inherit(SelectedStyle)
			case col == 3 && rows[row].Low:
				return CellStyle.Inherit(ErrorStyle)
			case rows[row].Level.IsBreak():
				return CellStyle.Inherit(SuccessStyle)
			}
			return CellStyle
		})
}

// PlanTable renders the chip plan, smallest chip first
func PlanTable(plan chips.Plan) *table.Table {
	data := make([][]string, 0, len(plan.Rows))
	for _, r := range plan.Rows {
		data = append(data, []string{
			r.Denomination.Name,
			strconv.Itoa(r.Denomination.Value),
			strconv.Itoa(r.PerPlayer),
			strconv.Itoa(r.Needed),
			strconv.Itoa(r.Remaining),
			r.Status.String(),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(BorderColor)).
		Headers("CHIP", "VALUE", "EACH", "NEEDED", "LEFT", "STATUS").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return CellStyle.Bold(true)
			}
			r := plan.Rows[row]
			switch {
			case col == 0:
				return CellStyle.Inherit(chipStyle(r.Denomination.Color))
			case col == 5 && r.Status == chips.StatusShort:
				return CellStyle.Inherit(ErrorStyle)
			case col == 5 && r.Status == chips.StatusLow:
				return CellStyle.Inherit(WarningStyle)
			}
			return CellStyle
		})
}

func renderPlanSummary(plan chips.Plan) string {
	line := InfoStyle.Render(fmt.Sprintf("%d per player · %d in play", plan.PlayerValue(), plan.InPlay()))
	if plan.Short() {
		line += "\n" + ErrorStyle.Render("Not enough chips for this many players")
	}
	return line
}

func (m *Model) renderSelected(rows []stats.Row) string {
	if m.selected < 0 || m.selected >= len(rows) {
		return ""
	}
	r := rows[m.selected]

	var b strings.Builder
	if r.Level.IsBreak() {
		b.WriteString(BreakBadgeStyle.Render(r.Level.Title()))
		b.WriteString(fmt.Sprintf("  %d min break\n", r.Minutes))
		if r.Level.Note != "" {
			b.WriteString(r.Level.Note)
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString(BadgeStyle.Render(r.Level.Title()))
	b.WriteString("  ")
	b.WriteString(BlindsStyle.Render(r.Level.Blinds()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Stack %d BB · Min pot %d · Min raise %d\n",
		r.Stats.BigBlinds, r.Stats.MinPot, r.Stats.MinRaise))
	if r.Low {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Short stacked: under %d big blinds", stats.LowStackBigBlinds)))
		b.WriteString("\n")
	}
	return b.String()
}
