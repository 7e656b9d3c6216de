package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/qyinm/filmboard/render"
	"github.com/qyinm/filmboard/types"
)

// FocusMark prefixes the first line of the focused control. The UI looks for
// it to keep the focused control scrolled into view.
const FocusMark = "▸ "

const cardIndent = "  "

// CardItem renders a card summary (3 lines) and raises "request detail"
// when activated.
type CardItem struct {
	node            *render.Node
	card            types.Card
	onRequestDetail func()
}

// NewCardItem creates a CardItem for card
func NewCardItem(card types.Card) *CardItem {
	c := &CardItem{card: card}
	c.node = render.NewNode("film-card", c)
	return c
}

func (c *CardItem) Node() *render.Node { return c.node }
func (c *CardItem) Card() types.Card   { return c.card }

// SetRequestDetailHandler fills the single "request detail" slot; a later
// call replaces the previous handler.
func (c *CardItem) SetRequestDetailHandler(fn func()) {
	c.onRequestDetail = fn
}

// Activate raises "request detail"
func (c *CardItem) Activate() {
	if c.onRequestDetail != nil {
		c.onRequestDetail()
	}
}

// Render renders a single card
func (c *CardItem) Render(f render.Frame, _ []string) string {
	prefix := cardIndent
	titleStyle := CardTitleStyle
	if f.Focused {
		prefix = FocusMark
		titleStyle = CardTitleFocusedStyle
	}

	// Line 1: Title + Rating
	rating := fmt.Sprintf("★ %.1f", c.card.Rating())
	available := f.Width - ansi.StringWidth(prefix) - ansi.StringWidth(rating) - 1
	if available < 1 {
		available = 1
	}
	title := ansi.Truncate(c.card.Title(), available, "…")
	pad := available - ansi.StringWidth(title)
	if pad < 0 {
		pad = 0
	}
	line1 := prefix + titleStyle.Render(title) + strings.Repeat(" ", pad+1) + CardRatingStyle.Render(rating)

	// Line 2: Year, runtime, genre, comments, flags
	var meta []string
	if !c.card.Info().Release.IsZero() {
		meta = append(meta, fmt.Sprintf("%d", c.card.Year()))
	}
	if c.card.Runtime() > 0 {
		meta = append(meta, types.FormatRuntime(c.card.Runtime()))
	}
	if genres := c.card.Genres(); len(genres) > 0 {
		meta = append(meta, genres[0])
	}
	meta = append(meta, commentLabel(c.card.CommentCount()))
	line2 := cardIndent + CardMetaStyle.Render(ansi.Truncate(strings.Join(meta, " · "), bodyWidth(f.Width-4), "…")) + " " + flagMarks(c.card.Flags())

	// Line 3: Description
	line3 := cardIndent + CardBodyStyle.Render(ansi.Truncate(c.card.Description(), bodyWidth(f.Width), "…"))

	return line1 + "\n" + line2 + "\n" + line3
}

func bodyWidth(width int) int {
	w := width - len(cardIndent)
	if w < 1 {
		return 1
	}
	return w
}

func commentLabel(n int) string {
	if n == 1 {
		return "1 comment"
	}
	return fmt.Sprintf("%d comments", n)
}

// flagMarks renders the watchlist / watched / favorite controls
func flagMarks(f types.Flags) string {
	mark := func(on bool, label string) string {
		if on {
			return CardFlagOnStyle.Render(label)
		}
		return CardMetaStyle.Render(label)
	}
	return mark(f.Watchlist, "+") + mark(f.Watched, "✓") + mark(f.Favorite, "♥")
}
