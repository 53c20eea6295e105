package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/tourneyclock/internal/chips"
	"github.com/lox/tourneyclock/internal/clock"
	"github.com/lox/tourneyclock/internal/schedule"
)

func (m *Model) renderClock(snap clock.Snapshot) string {
	if !snap.Open() {
		return InfoStyle.Render("Clock closed")
	}

	var sections []string

	badge := BadgeStyle
	if snap.Level.IsBreak() {
		badge = BreakBadgeStyle
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center,
		badge.Render(snap.Level.Title()),
		InfoStyle.Render(fmt.Sprintf("  %d of %d · %d min blinds", snap.Index+1, snap.Levels, snap.BlindMinutes)),
	))

	if snap.Level.IsBreak() {
		sections = append(sections, BlindsStyle.Render(snap.Level.Note))
	} else {
		sections = append(sections,
			BlindsStyle.Render(snap.Level.Blinds()),
			m.renderBreakdown("SB", snap.Level.SmallBlind),
			m.renderBreakdown("BB", snap.Level.BigBlind),
		)
	}

	timer := TimerStyle
	if snap.LowTime() {
		timer = TimerLowStyle
	}
	sections = append(sections,
		timer.Render(snap.Clock()),
		m.progress.ViewAs(snap.Progress()),
		renderNext(snap),
		"",
		renderControls(snap),
	)

	if m.status != "" {
		sections = append(sections, WarningStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m.clockKeys))

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

// renderBreakdown shows the chips making up amount, each in its colour
func (m *Model) renderBreakdown(label string, amount int) string {
	parts := make([]string, 0, 4)
	for _, d := range chips.Breakdown(amount, m.settings.Chips) {
		parts = append(parts, chipStyle(d.Color).Render(fmt.Sprintf("●%d", d.Value)))
	}
	if len(parts) == 0 {
		parts = append(parts, InfoStyle.Render("no exact chips"))
	}
	return InfoStyle.Render(label) + " " + strings.Join(parts, " ")
}

func renderNext(snap clock.Snapshot) string {
	if !snap.HasNext {
		return InfoStyle.Render("Next: Tournament ends")
	}
	return InfoStyle.Render("Next: " + describe(snap.NextLevel, snap.BlindMinutes))
}

func describe(l schedule.Level, blindMinutes int) string {
	minutes := schedule.Seconds(l, blindMinutes) / 60
	if l.IsBreak() {
		return fmt.Sprintf("%s (%d min)", l.Title(), minutes)
	}
	return fmt.Sprintf("%s %s (%d min)", l.Title(), l.Blinds(), minutes)
}

func renderControls(snap clock.Snapshot) string {
	toggle := "▶ start"
	if snap.Running() {
		toggle = "⏸ pause"
	}
	controls := []string{
		control("◀ prev", snap.CanRetreat()),
		control(toggle, snap.CanToggle()),
		control("next ▶", snap.CanAdvance()),
		control("↺ reset", true),
	}
	return strings.Join(controls, "   ")
}

func control(label string, enabled bool) string {
	if enabled {
		return ControlStyle.Render("[" + label + "]")
	}
	return DisabledStyle.Render("[" + label + "]")
}
