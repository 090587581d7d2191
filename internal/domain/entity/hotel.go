package entity

import "travel_console/internal/domain/value"

type Hotel struct {
	ID             value.ID      `json:"id"`
	Name           string        `json:"name"`
	OrganizationID value.ID      `json:"organization,omitempty"`
	Prices         []PriceRecord `json:"prices,omitempty"`
}
