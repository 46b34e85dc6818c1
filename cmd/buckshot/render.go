package main

import (
	"fmt"
	"io"
	"strings"

	"buckshot/internal/app"
	"buckshot/internal/bot"
	"buckshot/internal/bot/brain"
	"buckshot/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorLive  = lipgloss.Color("#E74C3C")
	colorBlank = lipgloss.Color("#3498DB")
	colorSplit = lipgloss.Color("#F4D03F")
	colorMuted = lipgloss.Color("#7F8C8D")

	styleTitle = lipgloss.NewStyle().Bold(true)
	styleMuted = lipgloss.NewStyle().Foreground(colorMuted)
	styleBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSplit).
			Padding(0, 1)
)

func tendencyStyle(t domain.Tendency) lipgloss.Style {
	switch t {
	case domain.TendencyCertainLive, domain.TendencyLeansLive:
		return lipgloss.NewStyle().Foreground(colorLive)
	case domain.TendencyCertainBlank, domain.TendencyLeansBlank:
		return lipgloss.NewStyle().Foreground(colorBlank)
	default:
		return lipgloss.NewStyle().Foreground(colorSplit)
	}
}

func tendencyLabel(c domain.Chamber) string {
	switch c.State {
	case domain.ShellKnownLive:
		return "LIVE (known)"
	case domain.ShellKnownBlank:
		return "BLANK (known)"
	}
	switch domain.Classify(c) {
	case domain.TendencyCertainLive:
		return "LIVE"
	case domain.TendencyCertainBlank:
		return "BLANK"
	case domain.TendencyLeansLive:
		return "likely live"
	case domain.TendencyLeansBlank:
		return "likely blank"
	default:
		return "coin flip"
	}
}

func renderChambers(w io.Writer, chambers []domain.Chamber) {
	if len(chambers) == 0 {
		fmt.Fprintln(w, styleMuted.Render("no chambers loaded"))
		return
	}
	for _, c := range chambers {
		style := tendencyStyle(domain.Classify(c))
		line := fmt.Sprintf("#%-2d %6.1f%%  %s", c.Position, c.Probability, style.Render(tendencyLabel(c)))
		if c.Conditional != nil {
			line += styleMuted.Render(fmt.Sprintf("  if prev live %.1f%% / if prev blank %.1f%%",
				c.Conditional.IfPrevLive, c.Conditional.IfPrevBlank))
		}
		fmt.Fprintln(w, line)
	}
}

func renderOdds(w io.Writer, live, blank int, odds brain.Odds) {
	fmt.Fprintf(w, "%s %d live / %d blank\n", styleTitle.Render("Magazine:"), live, blank)
	fmt.Fprintf(w, "  %s %5.1f%%\n", lipgloss.NewStyle().Foreground(colorLive).Render("live "), odds.Live)
	fmt.Fprintf(w, "  %s %5.1f%%\n", lipgloss.NewStyle().Foreground(colorBlank).Render("blank"), odds.Blank)
}

func renderRecommendation(w io.Writer, rec bot.Recommendation) {
	fmt.Fprintln(w, styleBox.Render(rec.Description))
}

func renderPlayers(w io.Writer, players []domain.Player) {
	for _, p := range players {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("OPPONENT %d", p.ID)
		}
		tags := []string{}
		if p.IsUser {
			tags = append(tags, "you")
		}
		if !p.Alive() {
			tags = append(tags, "out")
		}
		suffix := ""
		if len(tags) > 0 {
			suffix = styleMuted.Render(" (" + strings.Join(tags, ", ") + ")")
		}
		fmt.Fprintf(w, "  [%d] %-12s hp %d/%d  skill %d%s\n", p.ID, name, p.HP, p.MaxHP, p.Skill, suffix)
	}
}

func renderSession(w io.Writer, sess *app.Session, analysis app.Analysis) {
	phase := "setup"
	if sess.RoundActive {
		phase = "round in progress"
	}
	fmt.Fprintf(w, "%s %s\n", styleTitle.Render("Phase:"), phase)
	renderOdds(w, sess.LiveShells, sess.BlankShells, analysis.Odds)
	renderChambers(w, analysis.Chambers)
	fmt.Fprintln(w, styleTitle.Render("Players:"))
	renderPlayers(w, sess.Players)
	renderRecommendation(w, analysis.Recommendation)
}
