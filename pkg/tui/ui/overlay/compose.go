// Package overlay splices floating views into a background view at absolute
// cell positions, and hosts the bookkeeping for which floating elements are
// currently shown.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
)

// Placement pins a floating view to an absolute cell position within the
// surface. X and Y may land outside the surface; the visible intersection is
// drawn and the rest is clipped.
type Placement struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Compose splices the foreground view into the background at the placement,
// preserving background content outside the foreground bounds.
func Compose(background string, width, height int, foreground string, at Placement) string {
	bgLines := normalize(background, width, height)
	if foreground == "" {
		return strings.Join(bgLines, "\n")
	}

	fgLines := strings.Split(foreground, "\n")

	fgWidth := at.Width
	if fgWidth <= 0 {
		for _, line := range fgLines {
			if w := lipgloss.Width(line); w > fgWidth {
				fgWidth = w
			}
		}
	}
	fgHeight := at.Height
	if fgHeight <= 0 {
		fgHeight = len(fgLines)
	}
	if fgWidth <= 0 || fgHeight <= 0 {
		return strings.Join(bgLines, "\n")
	}

	x := at.X
	clipLeft := 0
	if x < 0 {
		clipLeft = -x
		x = 0
	}
	if x >= width {
		return strings.Join(bgLines, "\n")
	}
	visWidth := fgWidth - clipLeft
	if x+visWidth > width {
		visWidth = width - x
	}
	if visWidth <= 0 {
		return strings.Join(bgLines, "\n")
	}

	for row := 0; row < fgHeight; row++ {
		destY := at.Y + row
		if destY < 0 || destY >= len(bgLines) {
			continue
		}
		fgLine := ""
		if row < len(fgLines) {
			fgLine = fgLines[row]
		}
		fgLine = padToWidth(fgLine, fgWidth)
		fgLine = sliceWidth(fgLine, clipLeft, clipLeft+visWidth)

		baseLine := bgLines[destY]
		prefix := sliceWidth(baseLine, 0, x)
		suffix := sliceWidth(baseLine, x+visWidth, width)
		bgLines[destY] = prefix + fgLine + suffix
	}

	return strings.Join(bgLines, "\n")
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padToWidth(lines[i], width)
	}
	return lines
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	curr := lipgloss.Width(s)
	if curr > width {
		return truncate.String(s, uint(width))
	}
	if curr == width {
		return s
	}
	return s + strings.Repeat(" ", width-curr)
}

func sliceWidth(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	if w := lipgloss.Width(s); end > w {
		end = w
	}
	if start >= end {
		return ""
	}

	var result strings.Builder
	widthSeen := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		next := widthSeen + rw
		if next <= start {
			widthSeen = next
			continue
		}
		if widthSeen >= end || next > end {
			break
		}
		result.WriteRune(r)
		widthSeen = next
	}
	return result.String()
}
