package memory

import (
	"github.com/ericfisherdev/tajmahal/internal/domain/model"
	"github.com/ericfisherdev/tajmahal/internal/domain/port/driven"
)

var _ driven.RestaurantSource = RestaurantRepo{}

// RestaurantRepo serves the compiled-in restaurant record.
type RestaurantRepo struct{}

// NewRestaurantRepo creates a RestaurantRepo.
func NewRestaurantRepo() RestaurantRepo {
	return RestaurantRepo{}
}

// Restaurant returns the fixed record. Restaurant has only value fields, so
// callers cannot alter the shared copy.
func (RestaurantRepo) Restaurant() model.Restaurant {
	return tajMahal
}
