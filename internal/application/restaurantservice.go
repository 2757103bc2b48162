package application

import (
	"time"

	"github.com/ericfisherdev/tajmahal/internal/domain/model"
	"github.com/ericfisherdev/tajmahal/internal/domain/port/driven"
)

// weekdayNames are the French day labels, indexed by time.Weekday.
var weekdayNames = [...]string{
	time.Sunday:    "Dimanche",
	time.Monday:    "Lundi",
	time.Tuesday:   "Mardi",
	time.Wednesday: "Mercredi",
	time.Thursday:  "Jeudi",
	time.Friday:    "Vendredi",
	time.Saturday:  "Samedi",
}

// RestaurantService exposes the fixed restaurant record.
type RestaurantService struct {
	source driven.RestaurantSource
}

// NewRestaurantService creates a RestaurantService over source.
func NewRestaurantService(source driven.RestaurantSource) *RestaurantService {
	return &RestaurantService{source: source}
}

// Get returns the restaurant record unchanged.
func (s *RestaurantService) Get() model.Restaurant {
	return s.source.Restaurant()
}

// Today returns the day label shown next to the opening hours for now.
func (s *RestaurantService) Today(now time.Time) string {
	return weekdayNames[now.Weekday()]
}
