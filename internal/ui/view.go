package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/smm-uncleared/internal/filter"
	"github.com/atomicstack/smm-uncleared/internal/format/table"
)

var gameTitles = map[filter.Game]string{
	filter.GameSMM1: "Super Mario Maker",
	filter.GameSMM2: "Super Mario Maker 2",
}

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	f := m.current()
	lines := make([]styledLine, 0, 32)
	lines = append(lines, styledLine{text: m.tabs(), raw: true}, styledLine{})

	var bottom []styledLine
	if m.picker != nil {
		lines = append(lines, m.pickerLines()...)
		bottom = append(bottom, styledLine{text: m.filterPrompt(), raw: true})
	} else {
		lines = append(lines, m.selectorLines(f)...)
		lines = append(lines, styledLine{})
		lines = append(lines, m.levelLines(f)...)
	}
	if m.errMsg != "" {
		bottom = append([]styledLine{{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}}, bottom...)
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: m.footer(f), style: styles.Footer})
	}

	lines = limitHeight(lines, m.height-len(bottom), m.width)
	lines = append(lines, bottom...)
	return renderLines(applyWidth(lines, m.width))
}

func (m *Model) tabs() string {
	parts := make([]string, 0, len(m.order))
	for _, game := range m.order {
		style := styles.Tab
		if game == m.active {
			style = styles.ActiveTab
		}
		parts = append(parts, render(style, gameTitles[game]))
	}
	return strings.Join(parts, " ")
}

// selectorLines renders one "caption ‹ value ›" row per filter. An arrow
// that cannot move is drawn as a dimmed dot so it stays distinct without
// colour.
func (m *Model) selectorLines(f *feature) []styledLine {
	rows := make([][]string, 0, len(f.selectors))
	for i, sel := range f.selectors {
		def, _ := f.reg.Definition(filter.Key(sel.ID))
		indicator := render(styles.ItemIndicator, "  ")
		caption := render(styles.Caption, def.Caption)
		if i == f.focus {
			indicator = render(styles.SelectedItemIndicator, "▌ ")
			caption = render(styles.FocusCaption, def.Caption)
		}
		prev := arrow(sel.CanPrev(), "‹")
		next := arrow(sel.CanNext(), "›")
		rows = append(rows, []string{indicator + caption, prev + " " + render(styles.Value, sel.Label()) + " " + next})
	}
	formatted := table.Format(rows, nil)
	lines := make([]styledLine, len(formatted))
	for i, text := range formatted {
		lines[i] = styledLine{text: text, raw: true}
	}
	return lines
}

const arrowOff = "·"

func arrow(enabled bool, glyph string) string {
	if enabled {
		return render(styles.Arrow, glyph)
	}
	return render(styles.ArrowOff, arrowOff)
}

func (m *Model) pickerLines() []styledLine {
	current := m.picker
	lines := []styledLine{{text: current.Title, style: styles.Header}}
	m.syncViewport(current)
	if len(current.Items) == 0 {
		return append(lines, styledLine{text: fmt.Sprintf("No matches for %q", current.Filter), style: styles.Info})
	}
	start := 0
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(current.Items) > maxItems {
		start = min(max(current.ViewportOffset, 0), len(current.Items)-maxItems)
	}
	for i, item := range current.Visible(m.maxVisibleItems()) {
		lines = append(lines, m.buildItemLine(item.Label, start+i, current.Cursor, m.width))
	}
	return lines
}

func (m *Model) buildItemLine(label string, idx, cursor, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := "▌ " + label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) footer(f *feature) string {
	if m.picker != nil {
		return "↑/↓ move  enter choose  esc back  type to search"
	}
	bindings := m.keys.footerBindings(f.supportsMarkCleared())
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		if help.Key == "" {
			continue
		}
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
