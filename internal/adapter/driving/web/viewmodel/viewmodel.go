// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// DetailsViewModel holds presentation-ready data for the restaurant details page.
type DetailsViewModel struct {
	Name      string
	TypeLabel string // "Restaurant Indien"
	Today     string
	Hours     string
	Address   string
	Website   string
	Phone     string
	DineIn    bool
	TakeAway  bool

	ReviewCountLabel string // "(5)"
	AverageLabel     string // One decimal, e.g. "4.0".
	AverageStars     int    // Average rounded to whole stars.
	Distribution     []DistributionRowViewModel

	MapURL      string
	PhoneURL    string
	ReviewsPath string
}

// DistributionRowViewModel is one bar of the rating histogram, highest rating first.
type DistributionRowViewModel struct {
	Rating  int
	Count   int
	Percent int
}

// ReviewViewModel holds presentation-ready data for a single review.
type ReviewViewModel struct {
	Author      string
	AvatarURL   string
	Comment     string
	CommentHTML string
	Rating      int
	Stars       string
}

// ReviewFormViewModel holds the values echoed back into the review form.
type ReviewFormViewModel struct {
	Author    string
	Comment   string
	Rating    int
	Error     string
	CSRFToken string
	ActionURL string
}

// ReviewsPageViewModel holds presentation-ready data for the reviews page.
type ReviewsPageViewModel struct {
	RestaurantName string
	BackPath       string
	Reviews        []ReviewViewModel
	Form           ReviewFormViewModel
}
