package dto

import (
	"time"

	"github.com/qyinm/filmboard/types"
)

func FromCard(c types.Card) Card {
	info := c.Info()
	flags := c.Flags()

	year := 0
	if !info.Release.IsZero() {
		year = info.Release.Year()
	}
	runtime := ""
	if info.Runtime > 0 {
		runtime = types.FormatRuntime(info.Runtime)
	}

	return Card{
		ID:          c.ID(),
		Title:       info.Title,
		Rating:      info.Rating,
		Year:        year,
		Runtime:     runtime,
		Genres:      nonNil(info.Genres),
		Description: info.Description,
		Poster:      info.Poster,
		Comments:    c.CommentCount(),
		Watchlist:   flags.Watchlist,
		Watched:     flags.Watched,
		Favorite:    flags.Favorite,
	}
}

func FromCards(cards []types.Card) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, FromCard(c))
	}
	return out
}

func FromComment(c types.Comment) Comment {
	date := ""
	if !c.Date().IsZero() {
		date = c.Date().Format(time.RFC3339)
	}
	return Comment{
		Author:  c.Author(),
		Text:    c.Text(),
		Emotion: c.Emotion(),
		Date:    date,
	}
}

func FromFilter(f types.Filter) Filter {
	return Filter{
		Name:    f.Name(),
		Anchor:  f.Anchor(),
		Count:   f.Count(),
		Counted: f.HasCount(),
	}
}

func FromFilters(filters []types.Filter) []Filter {
	out := make([]Filter, 0, len(filters))
	for _, f := range filters {
		out = append(out, FromFilter(f))
	}
	return out
}

func FromCardDetail(c types.Card) CardDetail {
	info := c.Info()

	release := ""
	if !info.Release.IsZero() {
		release = info.Release.Format(time.DateOnly)
	}

	comments := make([]Comment, 0, len(c.Comments()))
	for _, cm := range c.Comments() {
		comments = append(comments, FromComment(cm))
	}

	return CardDetail{
		Card:          FromCard(c),
		OriginalTitle: info.OriginalTitle,
		Director:      info.Director,
		Writers:       nonNil(info.Writers),
		Actors:        nonNil(info.Actors),
		Release:       release,
		Country:       info.Country,
		AgeRating:     info.AgeRating,
		CommentList:   comments,
	}
}

// nonNil copies s so JSON always carries an array
func nonNil(s []string) []string {
	return append([]string{}, s...)
}
