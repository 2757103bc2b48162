package driven

import "github.com/ericfisherdev/tajmahal/internal/domain/model"

// RestaurantSource provides the fixed restaurant record.
type RestaurantSource interface {
	Restaurant() model.Restaurant
}
