package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/filmboard/render"
	"github.com/qyinm/filmboard/types"
)

// Node names the presenter looks up
const (
	CardListName      = "films-list"
	CardContainerName = "films-list__container"
	ExtraListName     = "films-list--extra"
)

// stack renders a title line above the children
type stack struct {
	title string
	style lipgloss.Style
}

func (s stack) Render(_ render.Frame, children []string) string {
	lines := make([]string, 0, len(children)+1)
	if s.title != "" {
		lines = append(lines, s.style.Render(s.title))
	}
	lines = append(lines, children...)
	return strings.Join(lines, "\n")
}

// listContainer separates cards with a blank line
type listContainer struct{}

func (listContainer) Render(_ render.Frame, children []string) string {
	return strings.Join(children, "\n\n")
}

// CardBoard is the films section: the primary list with its card container.
// Extra lists are mounted at its end.
type CardBoard struct {
	node *render.Node
}

// NewCardBoard builds the films section with an empty primary list
func NewCardBoard() *CardBoard {
	b := &CardBoard{node: render.NewNode("films", stack{})}
	list := b.node.Append(render.NewNode(CardListName, stack{title: "All movies. Upcoming", style: TitleStyle}))
	list.Append(render.NewNode(CardContainerName, listContainer{}))
	return b
}

func (b *CardBoard) Node() *render.Node { return b.node }

// NoData is the empty-state placeholder
type NoData struct {
	node *render.Node
}

func NewNoData() *NoData {
	v := &NoData{}
	v.node = render.NewNode("films-list--empty", v)
	return v
}

func (v *NoData) Node() *render.Node { return v.node }

func (v *NoData) Render(render.Frame, []string) string {
	return EmptyStyle.Render("There are no movies in our database")
}

// ExtraList is a titled secondary list (top rated, most commented)
type ExtraList struct {
	node  *render.Node
	title string
}

func newExtraList(title string) *ExtraList {
	e := &ExtraList{title: title}
	e.node = render.NewNode(ExtraListName, stack{title: "\n" + title, style: ExtraTitleStyle})
	e.node.Append(render.NewNode(CardContainerName, listContainer{}))
	return e
}

// NewTopRated creates the "Top rated" extra list
func NewTopRated() *ExtraList { return newExtraList("Top rated") }

// NewMostCommented creates the "Most commented" extra list
func NewMostCommented() *ExtraList { return newExtraList("Most commented") }

func (e *ExtraList) Node() *render.Node { return e.node }
func (e *ExtraList) Title() string      { return e.title }

// Container returns the node cards are mounted into
func (e *ExtraList) Container() (*render.Node, error) {
	return render.MustFind(e.node, CardContainerName)
}

// ShowMore is the pagination control; it raises "request more" when
// activated.
type ShowMore struct {
	node          *render.Node
	onRequestMore func()
}

func NewShowMore() *ShowMore {
	s := &ShowMore{}
	s.node = render.NewNode("films-list__show-more", s)
	return s
}

func (s *ShowMore) Node() *render.Node { return s.node }

// SetRequestMoreHandler fills the single "request more" slot
func (s *ShowMore) SetRequestMoreHandler(fn func()) {
	s.onRequestMore = fn
}

// Activate raises "request more"
func (s *ShowMore) Activate() {
	if s.onRequestMore != nil {
		s.onRequestMore()
	}
}

func (s *ShowMore) Render(f render.Frame, _ []string) string {
	if f.Focused {
		return "\n" + lipgloss.JoinHorizontal(lipgloss.Center, FocusMark, ShowMoreFocusedStyle.Render("Show more"))
	}
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Center, cardIndent, ShowMoreStyle.Render("Show more"))
}

// ProfileBadge shows the viewer rank in the header
type ProfileBadge struct {
	node *render.Node
	rank types.ProfileRank
}

func NewProfileBadge(rank types.ProfileRank) *ProfileBadge {
	p := &ProfileBadge{rank: rank}
	p.node = render.NewNode("header__profile", p)
	return p
}

func (p *ProfileBadge) Node() *render.Node { return p.node }

func (p *ProfileBadge) Render(f render.Frame, _ []string) string {
	badge := ProfileAvatarStyle.Render("◉")
	if title := p.rank.String(); title != "" {
		badge = ProfileRankStyle.Render(title) + " " + badge
	}
	return lipgloss.PlaceHorizontal(f.Width, lipgloss.Right, badge)
}

// FilterNav is the navigation bar; the filter stats are mounted at its start
type FilterNav struct {
	node *render.Node
}

func NewFilterNav() *FilterNav {
	n := &FilterNav{}
	n.node = render.NewNode("main-navigation", n)
	return n
}

func (n *FilterNav) Node() *render.Node { return n.node }

func (n *FilterNav) Render(_ render.Frame, children []string) string {
	stats := InactiveTabStyle.Render("Stats")
	return lipgloss.JoinHorizontal(lipgloss.Top, append(children, stats)...)
}

// FilterStats lists the filters with their counts
type FilterStats struct {
	node    *render.Node
	filters []types.Filter
}

func NewFilterStats(filters []types.Filter) *FilterStats {
	s := &FilterStats{filters: filters}
	s.node = render.NewNode("main-navigation__items", s)
	return s
}

func (s *FilterStats) Node() *render.Node { return s.node }

func (s *FilterStats) Render(render.Frame, []string) string {
	items := make([]string, 0, len(s.filters))
	for i, f := range s.filters {
		style := InactiveTabStyle
		if i == 0 {
			style = ActiveTabStyle
		}
		label := f.Name()
		if f.HasCount() {
			label += " " + TabCountStyle.Render(strconv.Itoa(f.Count()))
		}
		items = append(items, style.Render(label))
	}
	return strings.Join(items, "")
}

// SortMenu shows the sort options. Sorting itself is not handled here.
type SortMenu struct {
	node *render.Node
}

func NewSortMenu() *SortMenu {
	m := &SortMenu{}
	m.node = render.NewNode("sort", m)
	return m
}

func (m *SortMenu) Node() *render.Node { return m.node }

func (m *SortMenu) Render(render.Frame, []string) string {
	return ActiveTabStyle.Render("Sort by default") +
		InactiveTabStyle.Render("Sort by date") +
		InactiveTabStyle.Render("Sort by rating") + "\n"
}
