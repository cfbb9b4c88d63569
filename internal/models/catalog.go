package models

type Venue struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	ImageURL  string   `json:"imageUrl"`
	Amenities []string `json:"amenities"`
	Available int      `json:"available"`
}

type Testimonial struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Quote      string `json:"quote"`
	MatchCount int    `json:"matchCount"`
	AvatarURL  string `json:"avatarUrl"`
}
