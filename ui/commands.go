package ui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/filmboard/types"
)

// Message types for async operations

type catalogMsg struct {
	cards []types.Card
	err   error
}

type copiedMsg struct {
	title string
	err   error
}

// fetchCatalog returns a tea.Cmd that loads the catalog asynchronously
func fetchCatalog(source types.CardSource) tea.Cmd {
	return func() tea.Msg {
		cards, err := source.GetCatalog()
		return catalogMsg{cards: cards, err: err}
	}
}

// clipboardWrite is swapped out in tests
var clipboardWrite = clipboard.WriteAll

// copyTitle returns a tea.Cmd that copies a card title to the clipboard
func copyTitle(title string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{title: title, err: clipboardWrite(title)}
	}
}
