package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("#d14d4d")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc33")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDim:         lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// HUD styles
var (
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc33")).Bold(true)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(lipgloss.Width(title), lipgloss.Width(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGray)

	dst.DrawText(boxX+(boxW-lipgloss.Width(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-lipgloss.Width(subtitle))/2, boxY+3, subtitle, core.ColorDefault)
}

// renderHUD renders the score line shown above the playfield.
func renderHUD(score int, speed string, width int) string {
	left := hudLabelStyle.Render("Score: ") + hudValueStyle.Render(strconv.Itoa(score))
	right := hudLabelStyle.Render("Speed: ") + hudValueStyle.Render(speed)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + left + strings.Repeat(" ", gap) + right + " "
}
