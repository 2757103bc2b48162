package client

// Restaurant mirrors GET /api/v1/restaurant.
type Restaurant struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Hours    string `json:"hours" yaml:"hours"`
	Today    string `json:"today" yaml:"today"`
	Address  string `json:"address" yaml:"address"`
	Website  string `json:"website" yaml:"website"`
	Phone    string `json:"phone" yaml:"phone"`
	DineIn   bool   `json:"dine_in" yaml:"dine_in"`
	TakeAway bool   `json:"take_away" yaml:"take_away"`
}

// Review mirrors a review in the API. It is also the POST body.
type Review struct {
	Author    string `json:"author" yaml:"author"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
	Comment   string `json:"comment" yaml:"comment"`
	Rating    int    `json:"rating" yaml:"rating"`
}

// Summary mirrors GET /api/v1/reviews/summary.
type Summary struct {
	Count        int            `json:"count" yaml:"count"`
	Average      float64        `json:"average" yaml:"average"`
	AverageLabel string         `json:"average_label" yaml:"average_label"`
	Distribution map[string]int `json:"distribution" yaml:"distribution"`
}
