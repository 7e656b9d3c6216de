package dto

type Card struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Rating      float64  `json:"rating"`
	Year        int      `json:"year,omitempty"`
	Runtime     string   `json:"runtime,omitempty"`
	Genres      []string `json:"genres"`
	Description string   `json:"description"`
	Poster      string   `json:"poster,omitempty"`
	Comments    int      `json:"comments"`
	Watchlist   bool     `json:"watchlist"`
	Watched     bool     `json:"watched"`
	Favorite    bool     `json:"favorite"`
}

type Comment struct {
	Author  string `json:"author"`
	Text    string `json:"text"`
	Emotion string `json:"emotion,omitempty"`
	Date    string `json:"date,omitempty"`
}

type Filter struct {
	Name    string `json:"name"`
	Anchor  string `json:"anchor"`
	Count   int    `json:"count"`
	Counted bool   `json:"counted"`
}
