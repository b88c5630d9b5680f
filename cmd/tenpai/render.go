package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tenpai-trainer/mahjong"
)

var suitStyles = map[string]lipgloss.Style{
	mahjong.Man:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),   // red
	mahjong.Pin:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),  // blue
	mahjong.Sou:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),  // green
	mahjong.Wind:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
	mahjong.Dragon: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),  // magenta
}

var tileBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// renderTiles formats tiles in sorted compact notation with suit colors.
func renderTiles(tiles []mahjong.Tile) string {
	sorted := make([]mahjong.Tile, len(tiles))
	copy(sorted, tiles)
	mahjong.SortTiles(sorted)

	parts := make([]string, len(sorted))
	for i, t := range sorted {
		parts[i] = suitStyles[t.Suit].Render(t.Short())
	}
	return strings.Join(parts, " ")
}

// renderHandRow draws a hand as bordered tile cells, preserving its order
// (generated exercises arrive shuffled on purpose).
func renderHandRow(tiles []mahjong.Tile) string {
	cells := make([]string, len(tiles))
	for i, t := range tiles {
		cells[i] = tileBorder.Render(suitStyles[t.Suit].Render(t.Short()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
