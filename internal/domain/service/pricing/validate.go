package pricing

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"travel_console/internal/domain/entity"
	"travel_console/pkg/errcodes"
)

// ValidateForSave rejects a flattened list that would wipe all prices of a
// hotel.
func ValidateForSave(records []entity.PriceRecord) error {
	if len(records) == 0 {
		return failure.NewInvalidArgumentError(
			"empty price list",
			failure.WithCode(errcodes.EmptyPriceList),
			failure.WithDescription("Add at least one price before saving"),
		)
	}

	return nil
}

// ValidateSections reports sections whose start date is after their end
// date. Sections with a missing or unparseable date are not checked.
func ValidateSections(sections []entity.PriceSection) error {
	var errs []error

	for i, section := range sections {
		start, ok := section.StartDate.Time()
		if !ok {
			continue
		}

		end, ok := section.EndDate.Time()
		if !ok {
			continue
		}

		if start.After(end) {
			errs = append(errs, fmt.Errorf("section %d: %s is after %s", i+1, section.StartDate, section.EndDate))
		}
	}

	if len(errs) == 0 {
		return nil
	}

	err := errors.Join(errs...)

	return failure.NewInvalidArgumentError(
		err.Error(),
		failure.WithCode(errcodes.InvalidDateRange),
		failure.WithDescription("Start date must not be after end date"),
	)
}
