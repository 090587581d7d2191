package pricing

import (
	"github.com/samber/lo"

	"travel_console/internal/domain/entity"
	"travel_console/internal/domain/value"
)

// Flatten converts editor sections into the flat record list the data
// service stores. Sections are processed in order and never rejected.
func Flatten(sections []entity.PriceSection) []entity.PriceRecord {
	records := make([]entity.PriceRecord, 0, len(sections)*2) //nolint:mnd // room + one bed on average

	for _, section := range sections {
		records = append(records, flattenSection(section)...)
	}

	return records
}

// flattenSection ignores bed rows left blank in the editor; they count as
// absent for the legacy row too.
func flattenSection(section entity.PriceSection) []entity.PriceRecord {
	beds := lo.Filter(section.BedPrices, func(bed entity.BedPrice, _ int) bool {
		return bed.HasPrice()
	})

	if !section.HasBasePrice() && len(beds) == 0 {
		return nil
	}

	roomType := section.RoomType.Or(value.RoomTypeRoom)
	records := make([]entity.PriceRecord, 0, len(beds)+2) //nolint:mnd // base + legacy row

	if section.HasBasePrice() {
		records = append(records, newRecord(section, section.ID, value.RoomTypeRoom, section.Price, section.PurchasePrice))

		// Sections without bed prices also carry their price under their
		// own room type, which older readers of the list rely on.
		if len(beds) == 0 {
			records = append(records, newRecord(section, "", roomType, section.Price, section.PurchasePrice))
		}
	}

	for _, bed := range beds {
		records = append(records, newRecord(section, bed.ID, bed.Type.Or(roomType), bed.Price, bed.PurchasePrice))
	}

	return records
}

func newRecord(
	section entity.PriceSection,
	id value.ID,
	roomType value.RoomType,
	price, purchasePrice value.Amount,
) entity.PriceRecord {
	return entity.PriceRecord{
		ID:            id,
		StartDate:     section.StartDate,
		EndDate:       section.EndDate,
		RoomType:      roomType,
		Price:         value.Number(price.Float64()),
		PurchasePrice: value.Number(purchasePrice.Float64()),
		Profit:        value.Number(Profit(price.Float64(), purchasePrice.Float64())),
	}
}
