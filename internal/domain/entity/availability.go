package entity

import (
	"encoding/json"

	"travel_console/internal/domain/value"
)

// EndpointDescriptor identifies a data service route that serves
// availability. Path may contain the {hotel_id} placeholder.
type EndpointDescriptor struct {
	Path            string `json:"path"`
	UseHotelIDParam bool   `json:"use_hotel_id_param"`
}

type DateRange struct {
	From value.Date `json:"date_from"`
	To   value.Date `json:"date_to"`
}

type AvailabilityQuery struct {
	HotelID        value.ID
	Range          DateRange
	OrganizationID value.ID
}

// Availability is the room/floor/bed aggregate returned by the data
// service. Its shape belongs to the data service and is passed through.
type Availability json.RawMessage

func (a Availability) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return []byte("null"), nil
	}

	return a, nil
}

func (a *Availability) UnmarshalJSON(b []byte) error {
	*a = append((*a)[:0], b...)
	return nil
}

type FailureReason int

const (
	ReasonNone FailureReason = iota
	// ReasonInvalidParameters: a route exists but rejected the parameters,
	// usually a missing or wrong organization.
	ReasonInvalidParameters
	// ReasonFeatureUnavailable: no candidate route exists on this
	// deployment.
	ReasonFeatureUnavailable
	// ReasonTransient: server or network failure.
	ReasonTransient
)

func (r FailureReason) String() string {
	switch r {
	case ReasonNone:
		return "ok"
	case ReasonInvalidParameters:
		return "invalid_parameters"
	case ReasonFeatureUnavailable:
		return "feature_unavailable"
	case ReasonTransient:
		return "error"
	default:
		return "unknown"
	}
}

// AvailabilityResult is either a payload (Reason == ReasonNone) or a
// failure reason. Warning is set when cached parameters were rejected and
// discovery had to run again.
type AvailabilityResult struct {
	HotelID  value.ID
	Payload  Availability
	Endpoint *EndpointDescriptor
	Reason   FailureReason
	Warning  string
	Err      error
}

func (r AvailabilityResult) OK() bool {
	return r.Reason == ReasonNone
}
