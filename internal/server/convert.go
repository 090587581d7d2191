package server

import (
	"net/http"

	"travel_console/internal/domain/entity"
	"travel_console/pkg/lox"
	"travel_console/pkg/rest"
)

func newRESTPriceRecord(record entity.PriceRecord) rest.PriceRecord {
	return rest.PriceRecord{
		ID:            record.ID,
		StartDate:     record.StartDate,
		EndDate:       record.EndDate,
		RoomType:      record.RoomType,
		Price:         record.Price,
		PurchasePrice: record.PurchasePrice,
		Profit:        record.Profit,
	}
}

func newDomainPriceRecord(record rest.PriceRecord) entity.PriceRecord {
	return entity.PriceRecord{
		ID:            record.ID,
		StartDate:     record.StartDate,
		EndDate:       record.EndDate,
		RoomType:      record.RoomType,
		Price:         record.Price,
		PurchasePrice: record.PurchasePrice,
		Profit:        record.Profit,
	}
}

func newRESTPriceSection(section entity.PriceSection) rest.PriceSection {
	return rest.PriceSection{
		ID:            section.ID,
		StartDate:     section.StartDate,
		EndDate:       section.EndDate,
		RoomType:      section.RoomType,
		Price:         section.Price,
		PurchasePrice: section.PurchasePrice,
		BedPrices: lox.Map(section.BedPrices, func(bed entity.BedPrice) rest.BedPrice {
			return rest.BedPrice{
				ID:            bed.ID,
				Type:          bed.Type,
				Price:         bed.Price,
				PurchasePrice: bed.PurchasePrice,
			}
		}),
	}
}

func newDomainPriceSection(section rest.PriceSection) entity.PriceSection {
	return entity.PriceSection{
		ID:            section.ID,
		StartDate:     section.StartDate,
		EndDate:       section.EndDate,
		RoomType:      section.RoomType,
		Price:         section.Price,
		PurchasePrice: section.PurchasePrice,
		BedPrices: lox.Map(section.BedPrices, func(bed rest.BedPrice) entity.BedPrice {
			return entity.BedPrice{
				ID:            bed.ID,
				Type:          bed.Type,
				Price:         bed.Price,
				PurchasePrice: bed.PurchasePrice,
			}
		}),
	}
}

func newRESTPriceRecords(records []entity.PriceRecord) []rest.PriceRecord {
	return lox.Map(records, newRESTPriceRecord)
}

func newDomainPriceRecords(records []rest.PriceRecord) []entity.PriceRecord {
	return lox.Map(records, newDomainPriceRecord)
}

func newRESTPriceSections(sections []entity.PriceSection) []rest.PriceSection {
	return lox.Map(sections, newRESTPriceSection)
}

func newDomainPriceSections(sections []rest.PriceSection) []entity.PriceSection {
	return lox.Map(sections, newDomainPriceSection)
}

const (
	messageInvalidParameters  = "select an organization"
	messageFeatureUnavailable = "availability is not available on this deployment"
	messageAvailabilityError  = "availability could not be loaded, try again later"
)

// newRESTAvailability maps a lookup result to the response body and its
// HTTP status.
func newRESTAvailability(result entity.AvailabilityResult) (int, rest.AvailabilityResponse) {
	response := rest.AvailabilityResponse{
		Status:  rest.AvailabilityStatus(result.Reason.String()),
		Warning: result.Warning,
	}

	switch result.Reason {
	case entity.ReasonNone:
		response.Data = []byte(result.Payload)
		return http.StatusOK, response
	case entity.ReasonInvalidParameters:
		response.Message = messageInvalidParameters
		return http.StatusBadRequest, response
	case entity.ReasonFeatureUnavailable:
		response.Message = messageFeatureUnavailable
		return http.StatusNotImplemented, response
	default:
		response.Status = rest.AvailabilityStatusError
		response.Message = messageAvailabilityError

		return http.StatusBadGateway, response
	}
}
