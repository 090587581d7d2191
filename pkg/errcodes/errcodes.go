package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Pricing.
	EmptyPriceList   failure.ErrorCode = "EmptyPriceList"
	InvalidDateRange failure.ErrorCode = "InvalidDateRange"
	InvalidHotelID   failure.ErrorCode = "InvalidHotelID"

	// Remote data service.
	DataServiceUnavailable failure.ErrorCode = "DataServiceUnavailable"
	HotelNotFound          failure.ErrorCode = "HotelNotFound"
)
