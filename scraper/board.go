package scraper

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/qyinm/filmboard/types"
)

const activeControl = "film-card__controls-item--active"

// ParseBoard parses a saved board page and returns its film cards in
// document order. Cards without a title are skipped.
func ParseBoard(reader io.Reader) ([]types.Card, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	var cards []types.Card
	seen := make(map[string]bool)
	position := 0

	doc.Find("article.film-card").Each(func(_ int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find(".film-card__title").First().Text())
		if title == "" {
			return
		}
		position++

		id, _ := s.Attr("data-id")
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			id = fallbackID(seen, position)
		}
		seen[id] = true

		poster, _ := s.Find("img.film-card__poster").First().Attr("src")

		info := types.FilmInfo{
			Title:       title,
			Poster:      poster,
			Rating:      parseRating(s.Find(".film-card__rating").First().Text()),
			Release:     parseYear(s.Find(".film-card__year").First().Text()),
			Runtime:     parseRuntime(s.Find(".film-card__duration").First().Text()),
			Genres:      parseGenres(s.Find(".film-card__genre")),
			Description: strings.TrimSpace(s.Find(".film-card__description").First().Text()),
		}

		flags := types.Flags{
			Watchlist: isActive(s, ".film-card__controls-item--add-to-watchlist"),
			Watched:   isActive(s, ".film-card__controls-item--mark-as-watched"),
			Favorite:  isActive(s, ".film-card__controls-item--favorite"),
		}

		comments := parseCount(s.Find(".film-card__comments").First().Text())
		cards = append(cards, types.NewCard(id, info, flags, nil).WithCommentCount(comments))
	})

	return cards, nil
}

// fallbackID numbers a card by its position, moving past ids already taken
// by earlier cards.
func fallbackID(seen map[string]bool, position int) string {
	for n := position; ; n++ {
		if id := fmt.Sprintf("film-%03d", n); !seen[id] {
			return id
		}
	}
}

func isActive(card *goquery.Selection, selector string) bool {
	return card.Find(selector).HasClass(activeControl)
}

// parseRating reads a decimal rating. Returns 0 on failure.
func parseRating(s string) float64 {
	r, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || r < 0 {
		return 0
	}
	return r
}

// parseYear turns "1929" into January 1st of that year. Returns the zero
// time on failure.
func parseYear(s string) time.Time {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || year <= 0 {
		return time.Time{}
	}
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// parseRuntime reads durations written as "1h 55m", "54m" or "2h".
func parseRuntime(s string) time.Duration {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// parseGenres collects genres from every genre element, splitting
// comma-separated lists.
func parseGenres(sel *goquery.Selection) []string {
	var genres []string
	sel.Each(func(_ int, g *goquery.Selection) {
		for _, name := range strings.Split(g.Text(), ",") {
			if name = strings.TrimSpace(name); name != "" {
				genres = append(genres, name)
			}
		}
	})
	return genres
}

// parseCount reads the leading number of text like "1,024 comments".
// Returns 0 on failure.
func parseCount(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(fields[0], ",", ""))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
