package dto

type CardDetail struct {
	Card          Card      `json:"card"`
	OriginalTitle string    `json:"original_title,omitempty"`
	Director      string    `json:"director,omitempty"`
	Writers       []string  `json:"writers"`
	Actors        []string  `json:"actors"`
	Release       string    `json:"release,omitempty"`
	Country       string    `json:"country,omitempty"`
	AgeRating     string    `json:"age_rating,omitempty"`
	CommentList   []Comment `json:"comment_list"`
}
