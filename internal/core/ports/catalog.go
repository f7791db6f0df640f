package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// RestaurantInfo carries the pricing and delivery parameters the catalog
// knows about a restaurant.
type RestaurantInfo struct {
	Name               string
	Image              string
	DeliveryFee        kernel.Money
	MaxDeliveryMinutes int
}

// Catalog supplies restaurant data used to price orders and seed the
// estimated delivery time. Backed externally by the restaurant/product
// catalog service.
type Catalog interface {
	RestaurantInfo(ctx context.Context, restaurantID kernel.UUID) (RestaurantInfo, error)
}
