// Package mock generates the in-memory film catalog and the summaries derived
// from it (filters, ranked extra groups, profile rank).
package mock

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/qyinm/filmboard/types"
)

var (
	titles = []string{
		"The Dance of Life", "Sagebrush Trail", "The Man with the Golden Arm",
		"Santa Claus Conquers the Martians", "Popeye the Sailor Meets Sindbad the Sailor",
		"The Great Flamarion", "Made for Each Other", "The Gold Rush",
		"Sunrise", "Metropolis", "Nosferatu", "The General",
	}
	posters = []string{
		"made-for-each-other.png", "popeye-meets-sinbad.png", "sagebrush-trail.jpg",
		"santa-claus-conquers-the-martians.jpg", "the-dance-of-life.jpg",
		"the-great-flamarion.jpg", "the-man-with-the-golden-arm.jpg",
	}
	directors = []string{"Anthony Mann", "John Cromwell", "Otto Preminger", "Dave Fleischer", "F. W. Murnau"}
	writers   = []string{"Anne Wigton", "Heinz Herald", "Richard Weil", "Nelson Algren", "Walter Newman"}
	actors    = []string{"Erich von Stroheim", "Mary Beth Hughes", "Dan Duryea", "Frank Sinatra", "Kim Novak", "Carole Lombard"}
	countries = []string{"USA", "Germany", "France", "Italy"}
	genres    = []string{"Drama", "Comedy", "Western", "Musical", "Cartoon", "Mystery", "Film-Noir"}
	ages      = []string{"0+", "6+", "12+", "16+", "18+"}
	sentences = []string{
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
		"Cras aliquet varius magna, non porta ligula feugiat eget.",
		"Fusce tristique felis at fermentum pharetra.",
		"Aliquam id orci ut lectus varius viverra.",
		"Nullam nunc ex, convallis sed finibus eget, sollicitudin eget ante.",
		"Phasellus eros mauris, condimentum sed nibh vitae, sodales efficitur ipsum.",
		"Sed blandit, eros vel aliquam faucibus, purus ex euismod diam, eu luctus nunc ante ut dui.",
	}
	authors  = []string{"Tim Macoveev", "John Doe", "Ilya O'Reilly", "Sofia Ahn"}
	emotions = []string{"smile", "sleeping", "puke", "angry"}
)

const maxComments = 5

// Generator produces random cards from a seeded source
type Generator struct {
	rng  *rand.Rand
	next int
}

// NewGenerator creates a Generator; the same seed yields the same catalog.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Cards returns n freshly generated cards
func (g *Generator) Cards(n int) []types.Card {
	if n <= 0 {
		return []types.Card{}
	}
	out := make([]types.Card, 0, n)
	for range n {
		out = append(out, g.Card())
	}
	return out
}

// Card generates one card with a sequential id
func (g *Generator) Card() types.Card {
	g.next++
	title := pick(g.rng, titles)
	info := types.FilmInfo{
		Title:         title,
		OriginalTitle: "Original: " + title,
		Poster:        "./images/posters/" + pick(g.rng, posters),
		Rating:        float64(g.rng.IntN(101)) / 10,
		Director:      pick(g.rng, directors),
		Writers:       sample(g.rng, writers, 1+g.rng.IntN(2)),
		Actors:        sample(g.rng, actors, 2+g.rng.IntN(2)),
		Release:       time.Date(1925+g.rng.IntN(40), time.Month(1+g.rng.IntN(12)), 1+g.rng.IntN(28), 0, 0, 0, 0, time.UTC),
		Runtime:       time.Duration(40+g.rng.IntN(110)) * time.Minute,
		Country:       pick(g.rng, countries),
		Genres:        sample(g.rng, genres, 1+g.rng.IntN(3)),
		Description:   description(g.rng),
		AgeRating:     pick(g.rng, ages),
	}
	flags := types.Flags{
		Watchlist: g.rng.IntN(2) == 1,
		Watched:   g.rng.IntN(2) == 1,
		Favorite:  g.rng.IntN(2) == 1,
	}
	comments := make([]types.Comment, g.rng.IntN(maxComments+1))
	for i := range comments {
		comments[i] = types.NewComment(
			pick(g.rng, authors),
			pick(g.rng, sentences),
			pick(g.rng, emotions),
			time.Date(2019, time.Month(1+g.rng.IntN(12)), 1+g.rng.IntN(28), g.rng.IntN(24), g.rng.IntN(60), 0, 0, time.UTC),
		)
	}
	return types.NewCard(fmt.Sprintf("film-%03d", g.next), info, flags, comments)
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.IntN(len(pool))]
}

func sample(rng *rand.Rand, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	idx := rng.Perm(len(pool))[:n]
	out := make([]string, 0, n)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}

func description(rng *rand.Rand) string {
	n := 1 + rng.IntN(5)
	s := ""
	for i := range n {
		if i > 0 {
			s += " "
		}
		s += pick(rng, sentences)
	}
	return s
}

// Filters summarizes the catalog for the navigation menu
func Filters(cards []types.Card) []types.Filter {
	var watchlist, history, favorites int
	for _, c := range cards {
		f := c.Flags()
		if f.Watchlist {
			watchlist++
		}
		if f.Watched {
			history++
		}
		if f.Favorite {
			favorites++
		}
	}
	return []types.Filter{
		types.NewUncountedFilter("All movies", "all"),
		types.NewFilter("Watchlist", "watchlist", watchlist),
		types.NewFilter("History", "history", history),
		types.NewFilter("Favorites", "favorites", favorites),
	}
}

// Rank returns the profile rank for the catalog's watched count
func Rank(cards []types.Card) types.ProfileRank {
	watched := 0
	for _, c := range cards {
		if c.Flags().Watched {
			watched++
		}
	}
	return types.RankFor(watched)
}

// TopRated returns up to n cards with the highest rating. Unrated cards are
// skipped and ties keep catalog order.
func TopRated(cards []types.Card, n int) []types.Card {
	return topBy(cards, n, func(c types.Card) float64 { return c.Rating() })
}

// MostCommented returns up to n cards with the most comments. Cards without
// comments are skipped and ties keep catalog order.
func MostCommented(cards []types.Card, n int) []types.Card {
	return topBy(cards, n, func(c types.Card) float64 { return float64(c.CommentCount()) })
}

func topBy(cards []types.Card, n int, score func(types.Card) float64) []types.Card {
	if n <= 0 {
		return nil
	}
	ranked := make([]types.Card, 0, len(cards))
	for _, c := range cards {
		if score(c) > 0 {
			ranked = append(ranked, c)
		}
	}
	slices.SortStableFunc(ranked, func(a, b types.Card) int {
		sa, sb := score(a), score(b)
		switch {
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		default:
			return 0
		}
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Source implements types.CardSource with a generated catalog. The catalog
// is generated on first use and reused afterwards.
type Source struct {
	count int
	seed  uint64

	once  sync.Once
	cards []types.Card
}

// Compile-time interface check
var _ types.CardSource = (*Source)(nil)

// NewSource creates a Source producing count cards from seed
func NewSource(count int, seed uint64) *Source {
	return &Source{count: count, seed: seed}
}

// GetCatalog returns the generated catalog
func (s *Source) GetCatalog() ([]types.Card, error) {
	s.once.Do(func() {
		s.cards = NewGenerator(s.seed).Cards(s.count)
	})
	return s.cards, nil
}
