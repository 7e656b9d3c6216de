package ui

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/filmboard/presenter"
	"github.com/qyinm/filmboard/render"
	"github.com/qyinm/filmboard/types"
	"github.com/qyinm/filmboard/view"
)

// Model is the main TUI model. It hosts the board document and turns key
// presses into focus moves, activations and page-wide key events.
type Model struct {
	source   types.CardSource
	opts     []presenter.Option
	log      *slog.Logger
	doc      *render.Document
	board    *presenter.Board
	total    int
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap

	focus     *render.Node
	focusIdx  int
	pageFocus *render.Node

	width     int
	height    int
	loading   bool
	err       error
	statusMsg string
}

// NewModel creates a new Model that loads its catalog from source
func NewModel(source types.CardSource, logger *slog.Logger, opts ...presenter.Option) *Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = view.StatusBarStyle

	return &Model{
		source:    source,
		opts:      append(slices.Clone(opts), presenter.WithLogger(logger)),
		log:       logger,
		viewport:  viewport.New(0, 0),
		spinner:   s,
		help:      help.New(),
		keys:      keys,
		loading:   true,
		statusMsg: "Loading catalog",
	}
}

// Err returns the error that stopped the program, if any
func (m *Model) Err() error { return m.err }

// Init starts loading the catalog
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchCatalog(m.source))
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogMsg:
		return m, m.handleCatalog(msg)

	case copiedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			m.statusMsg = fmt.Sprintf("Copied %q", msg.title)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleCatalog(msg catalogMsg) tea.Cmd {
	m.loading = false
	if msg.err != nil {
		m.err = fmt.Errorf("load catalog: %w", msg.err)
		m.log.Error("load catalog", "err", msg.err)
		return tea.Quit
	}

	doc := render.NewDocument()
	board := presenter.New(doc, msg.cards, m.opts...)
	if err := board.Init(); err != nil {
		m.err = err
		m.log.Error("init board", "err", err)
		return tea.Quit
	}
	m.doc = doc
	m.board = board
	m.total = len(msg.cards)
	m.statusMsg = ""
	m.syncFocus()
	m.refresh()
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		if m.board != nil {
			m.board.Close()
		}
		return tea.Quit
	}
	if m.doc == nil {
		return nil
	}

	if m.doc.DispatchKey(msg) {
		m.syncFocus()
		m.refresh()
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Enter):
		m.activate()
	case key.Matches(msg, m.keys.Copy):
		if detail := m.openDetail(); detail != nil {
			return copyTitle(detail.Card().Title())
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizePanes()
	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(pageKey(msg, m.keys))
		return cmd
	default:
		return nil
	}
	m.refresh()
	return nil
}

// pageKey maps the page bindings onto the keys viewport understands
func pageKey(msg tea.KeyMsg, k keyMap) tea.KeyMsg {
	if key.Matches(msg, k.PageUp) {
		return tea.KeyMsg{Type: tea.KeyPgUp}
	}
	return tea.KeyMsg{Type: tea.KeyPgDown}
}

func (m *Model) activate() {
	if m.focus == nil {
		return
	}
	activator, ok := m.focus.View().(render.Activator)
	if !ok {
		return
	}
	if !m.doc.HasOverlay() {
		m.pageFocus = m.focus
	}
	activator.Activate()
	m.syncFocus()
}

func (m *Model) moveFocus(delta int) {
	acts := m.doc.Activators()
	if len(acts) == 0 {
		m.focus = nil
		return
	}
	i := slices.Index(acts, m.focus)
	if i < 0 {
		i = 0
	} else {
		i = (i + delta + len(acts)) % len(acts)
	}
	m.setFocus(acts, i)
}

// syncFocus keeps focus on a mounted activator after the tree changed
func (m *Model) syncFocus() {
	acts := m.doc.Activators()
	if len(acts) == 0 {
		m.focus = nil
		return
	}
	if i := slices.Index(acts, m.focus); i >= 0 {
		m.setFocus(acts, i)
		return
	}
	if !m.doc.HasOverlay() {
		if i := slices.Index(acts, m.pageFocus); i >= 0 {
			m.setFocus(acts, i)
			return
		}
		// The focused control went away (show more removed); its slot now
		// holds the first card it revealed.
		m.setFocus(acts, min(m.focusIdx, len(acts)-1))
		return
	}
	m.setFocus(acts, 0)
}

func (m *Model) setFocus(acts []*render.Node, i int) {
	m.focus = acts[i]
	if !m.doc.HasOverlay() {
		m.focusIdx = i
		m.pageFocus = m.focus
	}
}

func (m *Model) openDetail() *view.CardDetail {
	if m.doc == nil {
		return nil
	}
	for _, n := range m.doc.Body().Children() {
		if detail, ok := n.View().(*view.CardDetail); ok {
			return detail
		}
	}
	return nil
}

// refresh re-renders the page into the viewport and scrolls the focused
// control into view
func (m *Model) refresh() {
	if m.doc == nil || m.viewport.Width <= 0 {
		return
	}
	pageFocus := m.focus
	if m.doc.HasOverlay() {
		pageFocus = nil
	}
	content := m.doc.RenderPage(m.viewport.Width, pageFocus)
	m.viewport.SetContent(content)

	line := focusLine(content, view.FocusMark)
	if line < 0 {
		return
	}
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line+cardHeight > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line + cardHeight - m.viewport.Height)
	}
}

const cardHeight = 3

// View renders the current view
func (m *Model) View() string {
	if m.err != nil {
		return view.ErrorStyle.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.loading {
		return m.spinner.View() + " " + view.StatusBarStyle.Render(m.statusMsg) + "\n"
	}

	page := m.viewport.View()
	if m.doc.HasOverlay() {
		box := m.doc.RenderOverlay(m.viewport.Width-4, m.focus)
		page = placeOverlay(page, box, m.viewport.Width, m.viewport.Height)
	}
	return page + "\n" + m.statusView() + "\n" + m.help.View(m.keys)
}

func (m *Model) statusView() string {
	status := fmt.Sprintf("%d of %d films", m.board.RenderedCount(), m.total)
	if m.statusMsg != "" {
		status += " · " + m.statusMsg
	}
	return view.StatusBarStyle.Render(status)
}

// resizePanes adjusts the viewport to the window size
func (m *Model) resizePanes() {
	statusHeight := 1
	helpHeight := 1
	if m.help.ShowAll {
		helpHeight = 4
	}
	availableHeight := m.height - statusHeight - helpHeight
	if availableHeight < 0 {
		availableHeight = 0
	}

	m.help.Width = m.width
	m.viewport.Width = m.width
	m.viewport.Height = availableHeight
}
