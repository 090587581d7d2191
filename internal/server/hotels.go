package server

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"travel_console/internal/domain/entity"
	"travel_console/internal/domain/service/availability"
	"travel_console/internal/domain/service/pricing"
	"travel_console/internal/domain/value"
	"travel_console/pkg/contextx"
	"travel_console/pkg/errcodes"
	"travel_console/pkg/httpx/reply"
	"travel_console/pkg/httpx/req"
	"travel_console/pkg/logx"
	"travel_console/pkg/rest"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type hotelStore interface {
	GetHotel(ctx context.Context, hotelID, organizationID value.ID) (entity.Hotel, error)
	UpdateHotelPrices(
		ctx context.Context,
		hotelID, organizationID value.ID,
		records []entity.PriceRecord,
	) (entity.Hotel, error)
}

type hotelDirectory interface {
	Hotels(ctx context.Context, organizationID value.ID) ([]entity.Hotel, error)
	Forget(organizationID value.ID)
}

type lookupContexts interface {
	Get(id string) *availability.Service
	Drop(id string)
}

// HotelsServer serves price sections and availability of one hotel.
type HotelsServer struct {
	hotels    hotelStore
	directory hotelDirectory
	contexts  lookupContexts
}

func NewHotelsServer(
	hotels hotelStore,
	directory hotelDirectory,
	contexts lookupContexts,
) HotelsServer {
	return HotelsServer{
		hotels:    hotels,
		directory: directory,
		contexts:  contexts,
	}
}

func (s HotelsServer) getV1HotelPriceSections(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	hotelID, err := hotelIDFromPath(r)
	if err != nil {
		return err
	}

	hotel, err := s.hotels.GetHotel(ctx, hotelID, value.ID(r.URL.Query().Get("organization")))
	if err != nil {
		return fmt.Errorf("hotels.GetHotel: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.HotelPriceSections{
		HotelID:        hotel.ID,
		Name:           hotel.Name,
		OrganizationID: hotel.OrganizationID,
		Sections:       newRESTPriceSections(pricing.Reconstruct(hotel.Prices)),
	})

	return nil
}

func (s HotelsServer) putV1HotelPriceSections(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	hotelID, err := hotelIDFromPath(r)
	if err != nil {
		return err
	}

	var request rest.SavePriceSectionsRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	sections := newDomainPriceSections(request.Sections)
	records := pricing.Flatten(sections)

	if err = pricing.ValidateForSave(records); err != nil {
		return fmt.Errorf("pricing.ValidateForSave: %w", err)
	}

	var response rest.SavePriceSectionsResponse

	if err = pricing.ValidateSections(sections); err != nil {
		response.Warning = err.Error()
	}

	hotel, err := s.hotels.UpdateHotelPrices(ctx, hotelID, request.OrganizationID, records)
	if err != nil {
		return fmt.Errorf("hotels.UpdateHotelPrices: %w", err)
	}

	s.forgetHotelScopes(cmp.Or(hotel.OrganizationID, request.OrganizationID))

	if len(hotel.Prices) > 0 {
		records = hotel.Prices
	}

	logger(ctx).Info("hotel prices saved",
		slog.String(logx.FieldHotelID, hotelID.String()),
		slog.Int(logx.FieldSections, len(sections)),
		slog.Int(logx.FieldRecords, len(records)),
	)

	response.Records = newRESTPriceRecords(records)

	reply.JSON(ctx, w, http.StatusOK, response)

	return nil
}

func (s HotelsServer) getV1HotelAvailability(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	hotelID, err := hotelIDFromPath(r)
	if err != nil {
		return err
	}

	query := r.URL.Query()
	params := rest.AvailabilityParams{
		DateFrom:     query.Get("date_from"),
		DateTo:       query.Get("date_to"),
		Organization: query.Get("organization"),
	}

	if err = req.Validate(ctx, params); err != nil {
		return fmt.Errorf("req.Validate: %w", err)
	}

	result := s.contexts.Get(screenID(ctx)).FetchAvailability(ctx, entity.AvailabilityQuery{
		HotelID:        hotelID,
		Range:          entity.DateRange{From: value.Date(params.DateFrom), To: value.Date(params.DateTo)},
		OrganizationID: s.resolveOrganization(ctx, value.ID(params.Organization), hotelID),
	})

	status, response := newRESTAvailability(result)

	reply.JSON(ctx, w, status, response)

	return nil
}

func (s HotelsServer) deleteV1AvailabilityContext(w http.ResponseWriter, r *http.Request) error {
	s.contexts.Drop(screenID(r.Context()))

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// resolveOrganization falls back to the hotel directory when the caller
// did not pick an organization. A directory failure only costs the
// inference.
// forgetHotelScopes drops the directory lists that carry the hotel's old
// prices.
func (s HotelsServer) forgetHotelScopes(organizationID value.ID) {
	s.directory.Forget("")

	if !organizationID.IsZero() {
		s.directory.Forget(organizationID)
	}
}

func (s HotelsServer) resolveOrganization(ctx context.Context, explicit, hotelID value.ID) value.ID {
	if !explicit.IsZero() {
		return explicit
	}

	hotels, err := s.directory.Hotels(ctx, "")
	if err != nil {
		logger(ctx).Warn("directory.Hotels", logx.Error(err))
	}

	return availability.ResolveOrganization(explicit, hotelID, hotels)
}

func hotelIDFromPath(r *http.Request) (value.ID, error) {
	path := rest.HotelPath{ID: r.PathValue("id")}

	if err := req.Validate(r.Context(), path); err != nil {
		return "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("req.Validate: %w", err),
			failure.WithCode(errcodes.InvalidHotelID),
		)
	}

	return value.ID(path.ID), nil
}

func screenID(ctx context.Context) string {
	id, err := contextx.ScreenIDFromContext(ctx)
	if err != nil {
		return availability.DefaultContext
	}

	return id.String()
}
