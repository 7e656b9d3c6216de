package types

import (
	"fmt"
	"time"
)

// Flags holds the viewer's per-card list membership
type Flags struct {
	Watchlist bool
	Watched   bool
	Favorite  bool
}

// FilmInfo is the descriptive part of a card
type FilmInfo struct {
	Title         string
	OriginalTitle string
	Poster        string
	Rating        float64
	Director      string
	Writers       []string
	Actors        []string
	Release       time.Time
	Runtime       time.Duration
	Country       string
	Genres        []string
	Description   string
	AgeRating     string
}

// Comment is a single viewer comment attached to a card
type Comment struct {
	author  string
	text    string
	emotion string
	date    time.Time
}

// NewComment creates a new Comment
func NewComment(author, text, emotion string, date time.Time) Comment {
	return Comment{author: author, text: text, emotion: emotion, date: date}
}

func (c Comment) Author() string  { return c.author }
func (c Comment) Text() string    { return c.text }
func (c Comment) Emotion() string { return c.emotion }
func (c Comment) Date() time.Time { return c.date }

// Card represents one film in the catalog
type Card struct {
	id           string
	info         FilmInfo
	flags        Flags
	comments     []Comment
	commentCount int
}

// NewCard creates a new Card. The comment count follows len(comments).
func NewCard(id string, info FilmInfo, flags Flags, comments []Comment) Card {
	return Card{
		id:           id,
		info:         info,
		flags:        flags,
		comments:     comments,
		commentCount: len(comments),
	}
}

// WithCommentCount returns a copy of c reporting n comments. Used when only
// the count is known, e.g. for imported boards.
func (c Card) WithCommentCount(n int) Card {
	if n < len(c.comments) {
		n = len(c.comments)
	}
	c.commentCount = n
	return c
}

// Getters for Card fields
func (c Card) ID() string             { return c.id }
func (c Card) Info() FilmInfo         { return c.info }
func (c Card) Title() string          { return c.info.Title }
func (c Card) Rating() float64        { return c.info.Rating }
func (c Card) Genres() []string       { return c.info.Genres }
func (c Card) Flags() Flags           { return c.flags }
func (c Card) Comments() []Comment    { return c.comments }
func (c Card) CommentCount() int      { return c.commentCount }
func (c Card) Year() int              { return c.info.Release.Year() }
func (c Card) Runtime() time.Duration { return c.info.Runtime }
func (c Card) Description() string    { return c.info.Description }
func (c Card) FilterValue() string    { return c.info.Title }
func (c Card) String() string         { return fmt.Sprintf("%s (%s)", c.info.Title, c.id) }

// FormatRuntime renders a runtime as "1h 36m" or "52m"
func FormatRuntime(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// Filter is one entry of the navigation summary
type Filter struct {
	name   string
	anchor string
	count  int
	counts bool
}

// NewFilter creates a counted filter entry
func NewFilter(name, anchor string, count int) Filter {
	return Filter{name: name, anchor: anchor, count: count, counts: true}
}

// NewUncountedFilter creates a filter entry that shows no count ("All movies")
func NewUncountedFilter(name, anchor string) Filter {
	return Filter{name: name, anchor: anchor}
}

func (f Filter) Name() string   { return f.name }
func (f Filter) Anchor() string { return f.anchor }
func (f Filter) Count() int     { return f.count }
func (f Filter) HasCount() bool { return f.counts }

// ProfileRank is the viewer title derived from the watched count
type ProfileRank int

const (
	RankNone ProfileRank = iota
	RankNovice
	RankFan
	RankMovieBuff
)

// String returns the badge title for the rank
func (r ProfileRank) String() string {
	switch r {
	case RankNovice:
		return "novice"
	case RankFan:
		return "fan"
	case RankMovieBuff:
		return "movie buff"
	default:
		return ""
	}
}

// RankFor maps a watched count to a ProfileRank
// 0 -> none, 1-10 -> novice, 11-20 -> fan, 21+ -> movie buff
func RankFor(watched int) ProfileRank {
	switch {
	case watched <= 0:
		return RankNone
	case watched <= 10:
		return RankNovice
	case watched <= 20:
		return RankFan
	default:
		return RankMovieBuff
	}
}

// CardSource is the core abstraction for catalog access.
// Sync methods only, no bubbletea dependency.
type CardSource interface {
	GetCatalog() ([]Card, error)
}

// FindCard returns the card with the given id
func FindCard(cards []Card, id string) (Card, bool) {
	for _, c := range cards {
		if c.id == id {
			return c, true
		}
	}
	return Card{}, false
}
