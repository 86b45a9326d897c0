package board

import "github.com/dominiofast/smartfood-landing-sub000/internal/domain"

// The board accepts forward moves along the fulfillment flow plus exactly
// one step back for correction. Non-delivery orders skip the delivering
// stage in both directions.
//
//	waiting -> kitchen -> ready -> delivering -> delivered   (delivery)
//	waiting -> kitchen -> ready -> delivered                 (dine_in / takeout)
func allowedTransition(orderType string, from, to domain.OrderStatus) bool {
	delivery := orderType == domain.OrderTypeDelivery

	switch from {
	case domain.StatusWaiting:
		return to == domain.StatusKitchen
	case domain.StatusKitchen:
		return to == domain.StatusReady || to == domain.StatusWaiting
	case domain.StatusReady:
		if delivery {
			return to == domain.StatusDelivering || to == domain.StatusKitchen
		}
		return to == domain.StatusDelivered || to == domain.StatusKitchen
	case domain.StatusDelivering:
		return to == domain.StatusDelivered || to == domain.StatusReady
	case domain.StatusDelivered:
		if delivery {
			return to == domain.StatusDelivering
		}
		return to == domain.StatusReady
	}
	return false
}
