package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// placeOverlay draws box centered over base, which is padded or clipped to
// width x height first.
func placeOverlay(base, box string, width, height int) string {
	if box == "" || width <= 0 || height <= 0 {
		return base
	}

	baseLines := normalizeLines(base, width, height)
	boxLines := strings.Split(box, "\n")
	if len(boxLines) > height {
		boxLines = boxLines[:height]
	}
	boxW := 0
	for _, line := range boxLines {
		if w := ansi.StringWidth(line); w > boxW {
			boxW = w
		}
	}
	if boxW > width {
		boxW = width
	}

	top := (height - len(boxLines)) / 2
	left := (width - boxW) / 2

	for i, line := range boxLines {
		row := top + i
		line = ansi.Truncate(line, boxW, "")
		if pad := boxW - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		leftSlice := ansi.Cut(baseLines[row], 0, left)
		rightSlice := ansi.Cut(baseLines[row], left+boxW, width)
		baseLines[row] = leftSlice + line + rightSlice
	}
	return strings.Join(baseLines, "\n")
}

func normalizeLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		line = ansi.Truncate(line, width, "")
		if pad := width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = line
	}
	return lines
}

// focusLine returns the index of the first line holding mark, or -1
func focusLine(content, mark string) int {
	i := strings.Index(content, mark)
	if i < 0 {
		return -1
	}
	return strings.Count(content[:i], "\n")
}
