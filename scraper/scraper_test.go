package scraper

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/qyinm/filmboard/types"
)

func TestParseBoard(t *testing.T) {
	f, err := os.Open("testdata/board.html")
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	defer f.Close()

	cards, err := ParseBoard(f)
	if err != nil {
		t.Fatalf("ParseBoard returned error: %v", err)
	}

	if len(cards) != 4 {
		t.Fatalf("expected 4 cards (untitled card skipped), got %d", len(cards))
	}

	first := cards[0]
	if first.ID() != "dance-of-life" {
		t.Errorf("first card id = %q", first.ID())
	}
	if first.Title() != "The Dance of Life" {
		t.Errorf("first card title = %q", first.Title())
	}
	if first.Rating() != 8.3 {
		t.Errorf("first card rating = %v", first.Rating())
	}
	if first.Year() != 1929 {
		t.Errorf("first card year = %d", first.Year())
	}
	if first.Runtime() != time.Hour+55*time.Minute {
		t.Errorf("first card runtime = %v", first.Runtime())
	}
	if first.Info().Poster != "./images/posters/the-dance-of-life.jpg" {
		t.Errorf("first card poster = %q", first.Info().Poster)
	}
	if !strings.HasPrefix(first.Description(), "Burlesque comic") {
		t.Errorf("first card description = %q", first.Description())
	}
	if first.CommentCount() != 5 {
		t.Errorf("first card comments = %d", first.CommentCount())
	}
	if f := first.Flags(); !f.Watchlist || f.Watched || f.Favorite {
		t.Errorf("first card flags = %+v", f)
	}

	second := cards[1]
	if !slices.Equal(second.Genres(), []string{"Western", "Drama"}) {
		t.Errorf("second card genres = %v", second.Genres())
	}
	if second.Runtime() != 54*time.Minute {
		t.Errorf("second card runtime = %v", second.Runtime())
	}
	if second.CommentCount() != 1024 {
		t.Errorf("second card comments = %d", second.CommentCount())
	}
	if f := second.Flags(); f.Watchlist || !f.Watched || !f.Favorite {
		t.Errorf("second card flags = %+v", f)
	}

	// no data-id, no controls
	third := cards[2]
	if third.ID() != "film-003" {
		t.Errorf("third card id = %q", third.ID())
	}
	if third.Flags() != (types.Flags{}) {
		t.Errorf("third card should have no flags, got %+v", third.Flags())
	}
}

func TestParseBoard_BadFields(t *testing.T) {
	f, err := os.Open("testdata/board.html")
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	defer f.Close()

	cards, err := ParseBoard(f)
	if err != nil {
		t.Fatalf("ParseBoard returned error: %v", err)
	}

	last := cards[len(cards)-1]
	if last.ID() != "film-004" {
		t.Errorf("duplicate id should be replaced, got %q", last.ID())
	}
	if last.Rating() != 0 || last.Runtime() != 0 || last.CommentCount() != 0 {
		t.Errorf("unparseable fields should be zero: rating=%v runtime=%v comments=%d",
			last.Rating(), last.Runtime(), last.CommentCount())
	}
	if !last.Info().Release.IsZero() {
		t.Errorf("unparseable year should leave release unset")
	}
	if len(last.Genres()) != 0 {
		t.Errorf("expected no genres, got %v", last.Genres())
	}
}

func TestParseBoard_FallbackIDsStayUnique(t *testing.T) {
	r := strings.NewReader(`<html><body>
<article class="film-card" data-id="film-002"><h3 class="film-card__title">A</h3></article>
<article class="film-card"><h3 class="film-card__title">B</h3></article>
<article class="film-card" data-id="film-003"><h3 class="film-card__title">C</h3></article>
<article class="film-card" data-id="film-002"><h3 class="film-card__title">D</h3></article>
</body></html>`)

	cards, err := ParseBoard(r)
	if err != nil {
		t.Fatalf("ParseBoard returned error: %v", err)
	}

	want := []string{"film-002", "film-003", "film-004", "film-005"}
	if len(cards) != len(want) {
		t.Fatalf("expected %d cards, got %d", len(want), len(cards))
	}
	seen := make(map[string]string)
	for i, c := range cards {
		if c.ID() != want[i] {
			t.Errorf("card %d (%s): id = %q, want %q", i, c.Title(), c.ID(), want[i])
		}
		if prev, dup := seen[c.ID()]; dup {
			t.Errorf("duplicate id %q on %s and %s", c.ID(), prev, c.Title())
		}
		seen[c.ID()] = c.Title()
	}

	if got, ok := types.FindCard(cards, "film-003"); !ok || got.Title() != "B" {
		t.Fatalf("lookup by fallback id returned %v", got)
	}
}

func TestParseBoard_Malformed(t *testing.T) {
	r := strings.NewReader("<html><body><div>not a board</div></body></html>")

	cards, err := ParseBoard(r)
	if err != nil {
		t.Fatalf("ParseBoard should not error on malformed HTML, got: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("expected 0 cards for malformed HTML, got %d", len(cards))
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"5 comments", 5},
		{"1,024 comments", 1024},
		{"0", 0},
		{"", 0},
		{"no comments", 0},
		{"-3 comments", 0},
	}
	for _, tt := range tests {
		if got := parseCount(tt.in); got != tt.want {
			t.Errorf("parseCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseRuntime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"1h 55m", time.Hour + 55*time.Minute},
		{"54m", 54 * time.Minute},
		{"2h", 2 * time.Hour},
		{" 1h  18m ", time.Hour + 18*time.Minute},
		{"soon", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := parseRuntime(tt.in); got != tt.want {
			t.Errorf("parseRuntime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFileSourceCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.html")
	data, err := os.ReadFile("testdata/board.html")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write board: %v", err)
	}

	src := NewFileSource(path)
	if !src.LoadedAt().IsZero() {
		t.Fatalf("nothing should be cached yet")
	}
	cards, err := src.GetCatalog()
	if err != nil {
		t.Fatalf("GetCatalog: %v", err)
	}
	if len(cards) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(cards))
	}
	if src.LoadedAt().IsZero() {
		t.Fatalf("catalog should be cached")
	}

	// Cached result survives the file going away.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if cards, err = src.GetCatalog(); err != nil || len(cards) != 4 {
		t.Fatalf("expected cached catalog, got %d cards, err %v", len(cards), err)
	}

	src.ClearCache()
	_, err = src.GetCatalog()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error after cache clear, got %v", err)
	}
}
