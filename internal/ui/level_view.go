package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/smm-uncleared/internal/api"
	"github.com/atomicstack/smm-uncleared/internal/filter"
	"github.com/atomicstack/smm-uncleared/internal/format"
	"github.com/atomicstack/smm-uncleared/internal/format/table"
	"github.com/atomicstack/smm-uncleared/internal/query"
)

const (
	thumbnailRoot = "https://tgrcode.com/mm2/level_thumbnail/"
	viewerRoot    = "https://smm2.wizul.us/smm2/level/"
)

// thumbnailURL is where the level's preview image is hosted.
func thumbnailURL(id string) string {
	return thumbnailRoot + id
}

func viewerURL(id string) string {
	return viewerRoot + format.SMM2LevelID(id)
}

// levelLines renders whatever f's query slot holds.
func (m *Model) levelLines(f *feature) []styledLine {
	res := f.result()
	switch res.Status {
	case query.StatusIdle:
		return []styledLine{{text: "Press r to load a level.", style: styles.Info}}
	case query.StatusLoading:
		return []styledLine{{text: m.spinner.View() + " Loading level...", raw: true}}
	case query.StatusError:
		return []styledLine{
			{text: "Oh no!", style: styles.ErrorTitle},
			{text: errorText(res), style: styles.ErrorDetail},
		}
	}
	if f.game() == filter.GameSMM1 {
		return m.smm1Lines(f, res.Data)
	}
	return m.smm2Lines(f, res.Data)
}

func (m *Model) smm1Lines(f *feature, lvl api.Level) []styledLine {
	lines := []styledLine{{text: lvl.Title, style: styles.LevelTitle}, {}}
	rows := [][]string{
		{"Uploaded", format.ISODate(lvl.UploadedAt.Time)},
		{"Likes", format.Count(lvl.Likes)},
		{"Footprints", format.Count(lvl.Footprints)},
		{"Attempts", format.Count(lvl.Attempts)},
		{"Course ID", courseID(f.game(), lvl.ID)},
	}
	lines = append(lines, metaLines(rows)...)
	return append(lines, m.popoverLine(f)...)
}

func (m *Model) smm2Lines(f *feature, lvl api.Level) []styledLine {
	lines := []styledLine{{text: lvl.Title, style: styles.LevelTitle}}
	description := "(no description)"
	if lvl.Description != nil && strings.TrimSpace(*lvl.Description) != "" {
		description = *lvl.Description
	}
	lines = append(lines, styledLine{text: description, style: styles.LevelText}, styledLine{})

	uploaded := lvl.UploadedAt.Local()
	rows := [][]string{
		{"Uploaded", format.ISODate(uploaded) + " " + format.HHMMTime(uploaded) + " (" + format.Ago(uploaded, m.now()) + ")"},
		{"Likes", format.Count(lvl.Likes)},
		{"Boos", format.Count(lvl.Boos)},
		{"Footprints", format.Count(lvl.Footprints)},
		{"Comments", format.Count(lvl.Comments)},
		{"Style", optionLabel(f.reg, filter.KeyStyle, lvl.Style)},
		{"Theme", optionLabel(f.reg, filter.KeyTheme, lvl.Theme)},
		{"Clear check", format.ClearcheckMs(lvl.ClearcheckMs)},
	}
	if len(lvl.Tags) > 0 {
		tags := make([]string, len(lvl.Tags))
		for i, tag := range lvl.Tags {
			tags[i] = format.TagName(tag)
		}
		rows = append(rows, []string{"Tags", strings.Join(tags, ", ")})
	}
	if lvl.ClearCondition != nil && *lvl.ClearCondition != 0 {
		rows = append(rows, []string{"Clear condition", format.ClearCondition(*lvl.ClearCondition, lvl.ClearConditionMagnitude)})
	}
	rows = append(rows,
		[]string{"Attempts", format.Count(lvl.Attempts)},
		[]string{"Course ID", courseID(f.game(), lvl.ID)},
		[]string{"Thumbnail", render(styles.Link, thumbnailURL(lvl.ID))},
		[]string{"Viewer", render(styles.Link, viewerURL(lvl.ID))},
	)
	lines = append(lines, metaLines(rows)...)
	lines = append(lines, styledLine{}, styledLine{text: markButton(&f.mutation), raw: true})
	return append(lines, m.popoverLine(f)...)
}

// optionLabel names an API value the way the filters do, falling back to a
// title-cased form for values the registry does not list.
func optionLabel(reg *filter.Registry, key filter.Key, value string) string {
	if label := reg.Label(key, value); label != value {
		return label
	}
	return format.TagName(value)
}

func courseID(game filter.Game, id string) string {
	return render(styles.CourseID, displayID(game, id)) + render(styles.Footer, "  (c to copy)")
}

// metaLines aligns label/value rows.
func metaLines(rows [][]string) []styledLine {
	styled := make([][]string, len(rows))
	for i, row := range rows {
		styled[i] = make([]string, len(row))
		for c, cell := range row {
			if c == 0 {
				cell = render(styles.MetaLabel, cell)
			} else {
				cell = render(styles.MetaValue, cell)
			}
			styled[i][c] = cell
		}
	}
	formatted := table.Format(styled, nil)
	lines := make([]styledLine, len(formatted))
	for i, text := range formatted {
		lines[i] = styledLine{text: text, raw: true}
	}
	return lines
}

func markButton(mut *query.Mutation) string {
	style := styles.Button
	if !mut.Enabled() {
		style = styles.ButtonOff
	}
	return render(style, mut.Label()) + render(styles.Footer, "  (m)")
}

func (m *Model) popoverLine(f *feature) []styledLine {
	if !f.popover.visible {
		return nil
	}
	return []styledLine{{}, {text: f.popover.text, style: styles.Popover}}
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
