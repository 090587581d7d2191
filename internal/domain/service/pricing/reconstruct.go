package pricing

import (
	"github.com/samber/lo"

	"travel_console/internal/domain/entity"
	"travel_console/internal/domain/value"
)

type window struct {
	start value.Date
	end   value.Date
}

func windowOf(record entity.PriceRecord) window {
	return window{start: record.StartDate, end: record.EndDate}
}

// Reconstruct groups flat records back into editor sections, one per date
// window, in order of first appearance. Empty input yields a single blank
// section so the editor always has something to show.
//
// Only the first record of the dominant room type becomes the base price;
// further records of that type are kept as bed prices.
func Reconstruct(records []entity.PriceRecord) []entity.PriceSection {
	if len(records) == 0 {
		return []entity.PriceSection{DefaultSection()}
	}

	groups := lo.GroupBy(records, windowOf)
	order := lo.Uniq(lo.Map(records, func(record entity.PriceRecord, _ int) window {
		return windowOf(record)
	}))

	return lo.Map(order, func(w window, _ int) entity.PriceSection {
		return sectionFromGroup(groups[w])
	})
}

// DefaultSection is the blank section the editor starts from.
func DefaultSection() entity.PriceSection {
	return entity.PriceSection{
		RoomType:  value.RoomTypeRoom,
		BedPrices: []entity.BedPrice{},
	}
}

func sectionFromGroup(group []entity.PriceRecord) entity.PriceSection {
	dominant := dominantRoomType(group)

	_, baseIndex, ok := lo.FindIndexOf(group, func(record entity.PriceRecord) bool {
		return record.RoomType == dominant
	})
	if !ok {
		baseIndex = 0
	}

	base := group[baseIndex]
	section := entity.PriceSection{
		ID:            base.ID,
		StartDate:     base.StartDate,
		EndDate:       base.EndDate,
		RoomType:      dominant,
		Price:         value.NewAmount(base.Price.Float64()),
		PurchasePrice: value.NewAmount(base.PurchasePrice.Float64()),
		BedPrices:     make([]entity.BedPrice, 0, len(group)-1),
	}

	for i, record := range group {
		if i == baseIndex {
			continue
		}

		section.BedPrices = append(section.BedPrices, entity.BedPrice{
			ID:            record.ID,
			Type:          record.RoomType.Or(dominant),
			Price:         value.NewAmount(record.Price.Float64()),
			PurchasePrice: value.NewAmount(record.PurchasePrice.Float64()),
		})
	}

	return section
}

// dominantRoomType is the most frequent room type of the group; ties go to
// the type seen first.
func dominantRoomType(group []entity.PriceRecord) value.RoomType {
	counts := lo.CountValuesBy(group, func(record entity.PriceRecord) value.RoomType {
		return record.RoomType
	})

	var (
		dominant value.RoomType
		best     int
	)

	for _, record := range group {
		if count := counts[record.RoomType]; count > best {
			dominant, best = record.RoomType, count
		}
	}

	return dominant
}
