package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/qyinm/filmboard/render"
	"github.com/qyinm/filmboard/types"
)

// CardDetail is the full-detail overlay for one card. Its close button is a
// focusable child node; activating it raises "request close".
type CardDetail struct {
	node           *render.Node
	closeButton    *render.Node
	card           types.Card
	onRequestClose func()
}

// NewCardDetail creates the overlay for card. It is not mounted.
func NewCardDetail(card types.Card) *CardDetail {
	d := &CardDetail{card: card}
	d.node = render.NewNode("film-details", d)
	d.closeButton = d.node.Append(render.NewNode("film-details__close-btn", closeButton{detail: d}))
	return d
}

func (d *CardDetail) Node() *render.Node        { return d.node }
func (d *CardDetail) Card() types.Card          { return d.card }
func (d *CardDetail) CloseButton() *render.Node { return d.closeButton }

// SetRequestCloseHandler fills the single "request close" slot; a later
// call replaces the previous handler.
func (d *CardDetail) SetRequestCloseHandler(fn func()) {
	d.onRequestClose = fn
}

// RequestClose raises "request close"
func (d *CardDetail) RequestClose() {
	if d.onRequestClose != nil {
		d.onRequestClose()
	}
}

// Render draws the detail box. children holds the rendered close button.
func (d *CardDetail) Render(f render.Frame, children []string) string {
	width := f.Width
	if width > 72 {
		width = 72
	}
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	info := d.card.Info()
	var b strings.Builder

	closeLine := strings.Join(children, " ")
	b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Right, closeLine))
	b.WriteString("\n")
	b.WriteString(DetailTitleStyle.Render(ansi.Truncate(info.Title, inner-8, "…")))
	b.WriteString("  ")
	b.WriteString(CardRatingStyle.Render(fmt.Sprintf("★ %.1f", info.Rating)))
	if info.AgeRating != "" {
		b.WriteString("  " + CardMetaStyle.Render(info.AgeRating))
	}
	b.WriteString("\n")
	if info.OriginalTitle != "" {
		b.WriteString(DetailTaglineStyle.Render(ansi.Truncate(info.OriginalTitle, inner, "…")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	rows := [][2]string{
		{"Director", info.Director},
		{"Writers", strings.Join(info.Writers, ", ")},
		{"Actors", strings.Join(info.Actors, ", ")},
		{"Release", releaseLabel(info)},
		{"Runtime", runtimeLabel(info)},
		{"Country", info.Country},
		{"Genres", strings.Join(info.Genres, ", ")},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		label := DetailLabelStyle.Render(fmt.Sprintf("%-9s", row[0]))
		b.WriteString(label + ansi.Truncate(row[1], inner-10, "…") + "\n")
	}

	if info.Description != "" {
		b.WriteString("\n")
		b.WriteString(CardBodyStyle.Render(ansi.Wordwrap(info.Description, inner, " ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(flagMarks(d.card.Flags()))
	b.WriteString("  ")
	b.WriteString(CardMetaStyle.Render("watchlist · watched · favorite"))
	b.WriteString("\n\n")

	b.WriteString(DetailTitleStyle.Render(fmt.Sprintf("Comments %d", d.card.CommentCount())))
	for _, c := range d.card.Comments() {
		b.WriteString("\n")
		head := fmt.Sprintf("[%s] %s, %s", c.Emotion(), c.Author(), c.Date().Format("2006/01/02 15:04"))
		b.WriteString(DetailLabelStyle.Render(ansi.Truncate(head, inner, "…")))
		b.WriteString("\n")
		b.WriteString(ansi.Truncate(c.Text(), inner, "…"))
	}

	return DetailBoxStyle.Width(width - 2).Render(b.String())
}

func releaseLabel(info types.FilmInfo) string {
	if info.Release.IsZero() {
		return ""
	}
	return info.Release.Format("02 January 2006")
}

func runtimeLabel(info types.FilmInfo) string {
	if info.Runtime <= 0 {
		return ""
	}
	return types.FormatRuntime(info.Runtime)
}

// closeButton is the overlay's focusable close control
type closeButton struct {
	detail *CardDetail
}

func (c closeButton) Activate() {
	c.detail.RequestClose()
}

func (c closeButton) Render(f render.Frame, _ []string) string {
	if f.Focused {
		return FocusMark + DetailCloseFocusedStyle.Render("[ close ]")
	}
	return DetailCloseStyle.Render("[ close ]")
}
