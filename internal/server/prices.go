package server

import (
	"fmt"
	"net/http"

	"travel_console/internal/domain/service/pricing"
	"travel_console/pkg/httpx/reply"
	"travel_console/pkg/httpx/req"
	"travel_console/pkg/rest"
)

// PricesServer converts price lists between the editor and storage forms
// without touching the data service.
type PricesServer struct{}

func NewPricesServer() PricesServer {
	return PricesServer{}
}

func (s PricesServer) postV1PricesFlatten(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.FlattenRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	sections := newDomainPriceSections(request.Sections)

	response := rest.FlattenResponse{
		Records: newRESTPriceRecords(pricing.Flatten(sections)),
	}

	if err := pricing.ValidateSections(sections); err != nil {
		response.Warning = err.Error()
	}

	reply.JSON(ctx, w, http.StatusOK, response)

	return nil
}

func (s PricesServer) postV1PricesReconstruct(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ReconstructRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	sections := pricing.Reconstruct(newDomainPriceRecords(request.Records))

	reply.JSON(ctx, w, http.StatusOK, rest.ReconstructResponse{
		Sections: newRESTPriceSections(sections),
	})

	return nil
}
