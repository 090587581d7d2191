package entity

import "travel_console/internal/domain/value"

// PriceRecord is the flat form of a hotel price as persisted by the data
// service: one date window, one room type.
type PriceRecord struct {
	ID            value.ID       `json:"id,omitempty"`
	StartDate     value.Date     `json:"start_date"`
	EndDate       value.Date     `json:"end_date"`
	RoomType      value.RoomType `json:"room_type"`
	Price         value.Number   `json:"price"`
	PurchasePrice value.Number   `json:"purchase_price"`
	Profit        value.Number   `json:"profit"`
}

// PriceSection is the editor form of all prices sharing one date window.
type PriceSection struct {
	ID            value.ID       `json:"id,omitempty"`
	StartDate     value.Date     `json:"start_date"`
	EndDate       value.Date     `json:"end_date"`
	RoomType      value.RoomType `json:"room_type"`
	Price         value.Amount   `json:"price"`
	PurchasePrice value.Amount   `json:"purchase_price"`
	BedPrices     []BedPrice     `json:"bed_prices"`
}

// HasBasePrice reports whether the section's own price or purchase price
// was filled in.
func (s PriceSection) HasBasePrice() bool {
	return !s.Price.IsEmpty() || !s.PurchasePrice.IsEmpty()
}

type BedPrice struct {
	ID            value.ID       `json:"id,omitempty"`
	Type          value.RoomType `json:"type"`
	Price         value.Amount   `json:"price"`
	PurchasePrice value.Amount   `json:"purchase_price"`
}

// HasPrice reports whether either amount of the bed was filled in.
func (b BedPrice) HasPrice() bool {
	return !b.Price.IsEmpty() || !b.PurchasePrice.IsEmpty()
}
