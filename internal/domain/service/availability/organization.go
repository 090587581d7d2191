package availability

import (
	"github.com/samber/lo"

	"travel_console/internal/domain/entity"
	"travel_console/internal/domain/value"
)

// ResolveOrganization picks the organization to scope an availability
// request with: the explicit one, else the organization of the hotel in an
// already loaded collection, else none.
func ResolveOrganization(explicit, hotelID value.ID, hotels []entity.Hotel) value.ID {
	if !explicit.IsZero() {
		return explicit
	}

	hotel, ok := lo.Find(hotels, func(h entity.Hotel) bool {
		return h.ID == hotelID
	})
	if !ok {
		return ""
	}

	return hotel.OrganizationID
}
