package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"travel_console/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/prices", func(r chi.Router) {
				r.Post("/flatten", handler(s.postV1PricesFlatten))
				r.Post("/reconstruct", handler(s.postV1PricesReconstruct))
			})

			r.Route("/hotels/{id}", func(r chi.Router) {
				r.Get("/price-sections", handler(s.getV1HotelPriceSections))
				r.Put("/price-sections", handler(s.putV1HotelPriceSections))
				r.Get("/availability", handler(s.getV1HotelAvailability))
			})

			r.Delete("/availability/context", handler(s.deleteV1AvailabilityContext))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
