// Package presenter owns the film board: it decides what is mounted where,
// reveals the catalog page by page and runs the detail overlay lifecycle.
package presenter

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/filmboard/config"
	"github.com/qyinm/filmboard/mock"
	"github.com/qyinm/filmboard/render"
	"github.com/qyinm/filmboard/types"
	"github.com/qyinm/filmboard/view"
)

// CancelKey closes the open overlay
var CancelKey = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close"))

// Option configures a Board
type Option func(*Board)

// WithStep sets how many cards each page reveals
func WithStep(n int) Option {
	return func(b *Board) {
		if n > 0 {
			b.step = n
		}
	}
}

// WithExtraCount sets how many cards each extra list shows
func WithExtraCount(n int) Option {
	return func(b *Board) {
		if n >= 0 {
			b.extraCount = n
		}
	}
}

// WithLogger sets the logger for lifecycle events
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.log = l
		}
	}
}

// Board is the catalog presenter
type Board struct {
	doc        *render.Document
	cards      []types.Card
	step       int
	extraCount int
	log        *slog.Logger

	profile       *view.ProfileBadge
	nav           *view.FilterNav
	sortMenu      *view.SortMenu
	cardBoard     *view.CardBoard
	noData        *view.NoData
	showMore      *view.ShowMore
	topRated      *view.ExtraList
	mostCommented *view.ExtraList

	cardContainer *render.Node
	renderedCount int
	initialized   bool

	overlay overlaySlot
}

// overlaySlot holds the open overlay and its cancellation listener. Both are
// set or both are empty.
type overlaySlot struct {
	detail   *view.CardDetail
	listener render.ListenerID
}

func (s overlaySlot) open() bool { return s.detail != nil }

// New creates a Board over cards. Nothing is mounted until Init.
func New(doc *render.Document, cards []types.Card, opts ...Option) *Board {
	b := &Board{
		doc:        doc,
		cards:      cards,
		step:       config.DefaultStep,
		extraCount: config.DefaultExtraCount,
		log:        slog.New(slog.DiscardHandler),

		profile:       view.NewProfileBadge(mock.Rank(cards)),
		nav:           view.NewFilterNav(),
		sortMenu:      view.NewSortMenu(),
		cardBoard:     view.NewCardBoard(),
		noData:        view.NewNoData(),
		showMore:      view.NewShowMore(),
		topRated:      view.NewTopRated(),
		mostCommented: view.NewMostCommented(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Init mounts the whole board. The steps depend on containers mounted by the
// ones before them.
func (b *Board) Init() error {
	if b.initialized {
		return fmt.Errorf("board already initialized")
	}
	if b.doc == nil {
		return fmt.Errorf("init board: document: %w", render.ErrNotFound)
	}
	steps := []struct {
		name string
		fn   func() error
	}{
		{"profile", b.renderProfile},
		{"filters", b.renderFilters},
		{"card board", b.renderCardBoard},
		{"extra lists", b.renderExtraLists},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			return fmt.Errorf("init board: %s: %w", s.name, err)
		}
	}
	b.initialized = true
	b.log.Debug("board initialized",
		"cards", len(b.cards),
		"rendered", b.renderedCount,
		"step", b.step,
	)
	return nil
}

// Close tears the board down far enough that no key listener outlives it.
func (b *Board) Close() {
	b.closeOverlay(b.overlay.detail)
}

// RenderedCount returns the pagination cursor
func (b *Board) RenderedCount() int { return b.renderedCount }

// OverlayOpen reports whether a detail overlay is open
func (b *Board) OverlayOpen() bool { return b.overlay.open() }

func (b *Board) renderProfile() error {
	return render.Mount(b.doc.Header(), b.profile.Node(), render.BeforeEnd)
}

func (b *Board) renderFilters() error {
	stats := view.NewFilterStats(mock.Filters(b.cards))
	if err := render.Mount(b.doc.Main(), b.nav.Node(), render.BeforeEnd); err != nil {
		return err
	}
	if err := render.Mount(b.nav.Node(), stats.Node(), render.AfterBegin); err != nil {
		return err
	}
	return render.Mount(b.doc.Main(), b.sortMenu.Node(), render.BeforeEnd)
}

func (b *Board) renderCardBoard() error {
	if len(b.cards) == 0 {
		return render.Mount(b.doc.Main(), b.noData.Node(), render.BeforeEnd)
	}
	if err := render.Mount(b.doc.Main(), b.cardBoard.Node(), render.BeforeEnd); err != nil {
		return err
	}

	container, err := render.MustFind(b.doc.Main(), view.CardContainerName)
	if err != nil {
		return err
	}
	b.cardContainer = container

	end := min(len(b.cards), b.step)
	for _, card := range b.cards[:end] {
		if err := b.createCard(container, card); err != nil {
			return err
		}
	}
	b.renderedCount = end

	return b.renderShowMore()
}

func (b *Board) renderShowMore() error {
	if len(b.cards) <= b.step {
		return nil
	}
	list, err := render.MustFind(b.doc.Main(), view.CardListName)
	if err != nil {
		return err
	}
	if err := render.Mount(list, b.showMore.Node(), render.BeforeEnd); err != nil {
		return err
	}
	b.showMore.SetRequestMoreHandler(b.handleShowMore)
	return nil
}

// handleShowMore reveals the next page and removes the control once the
// catalog is exhausted.
func (b *Board) handleShowMore() {
	if !b.showMore.Node().Mounted() || b.renderedCount >= len(b.cards) {
		return
	}
	end := min(b.renderedCount+b.step, len(b.cards))
	for _, card := range b.cards[b.renderedCount:end] {
		if err := b.createCard(b.cardContainer, card); err != nil {
			b.log.Error("show more: create card", "card", card.ID(), "err", err)
			return
		}
	}
	b.renderedCount = end
	b.log.Debug("show more", "rendered", b.renderedCount, "total", len(b.cards))

	if b.renderedCount >= len(b.cards) {
		render.Unmount(b.showMore.Node())
		b.showMore.SetRequestMoreHandler(nil)
		b.log.Debug("show more removed")
	}
}

func (b *Board) renderExtraLists() error {
	if len(b.cards) == 0 {
		return nil
	}
	groups := []struct {
		list  *view.ExtraList
		cards []types.Card
	}{
		{b.topRated, mock.TopRated(b.cards, b.extraCount)},
		{b.mostCommented, mock.MostCommented(b.cards, b.extraCount)},
	}
	for _, g := range groups {
		if err := render.Mount(b.cardBoard.Node(), g.list.Node(), render.BeforeEnd); err != nil {
			return err
		}
	}
	for _, g := range groups {
		container, err := g.list.Container()
		if err != nil {
			return err
		}
		for _, card := range g.cards {
			if err := b.createCard(container, card); err != nil {
				return err
			}
		}
	}
	return nil
}

// createCard mounts an item for card into container and wires its detail
// overlay.
func (b *Board) createCard(container *render.Node, card types.Card) error {
	item := view.NewCardItem(card)
	detail := view.NewCardDetail(card)

	if err := render.Mount(container, item.Node(), render.BeforeEnd); err != nil {
		return err
	}
	item.SetRequestDetailHandler(func() {
		if err := b.openOverlay(detail); err != nil {
			b.log.Error("open detail", "card", card.ID(), "err", err)
		}
	})
	detail.SetRequestCloseHandler(func() {
		b.closeOverlay(detail)
	})
	return nil
}

func (b *Board) openOverlay(detail *view.CardDetail) error {
	if b.overlay.detail == detail {
		return nil
	}
	if b.overlay.open() {
		b.closeOverlay(b.overlay.detail)
	}
	if err := render.Mount(b.doc.Body(), detail.Node(), render.BeforeEnd); err != nil {
		return err
	}
	id := b.doc.AddKeyListener(func(msg tea.KeyMsg) bool {
		if !key.Matches(msg, CancelKey) {
			return false
		}
		b.closeOverlay(detail)
		return true
	})
	b.overlay = overlaySlot{detail: detail, listener: id}
	b.log.Debug("overlay opened", "card", detail.Card().ID(), "listeners", b.doc.ListenerCount())
	return nil
}

// closeOverlay closes detail if it is the open overlay; anything else is a
// no-op, so the first of esc or the close button wins.
func (b *Board) closeOverlay(detail *view.CardDetail) {
	if detail == nil || b.overlay.detail != detail {
		return
	}
	render.Unmount(detail.Node())
	b.doc.RemoveKeyListener(b.overlay.listener)
	b.overlay = overlaySlot{}
	b.log.Debug("overlay closed", "card", detail.Card().ID(), "listeners", b.doc.ListenerCount())
}
