package dataservice_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"travel_console/internal/domain"
	"travel_console/internal/domain/entity"
	"travel_console/internal/infrastructure/dataservice"
	"travel_console/pkg/errcodes"
	"travel_console/pkg/httpx"
)

type capturedRequest struct {
	method string
	path   string
	query  url.Values
	auth   string
	body   string
}

// newServer answers every request with the given status and body and
// reports what it received.
func newServer(t *testing.T, status int, body string) (*httptest.Server, <-chan capturedRequest) {
	t.Helper()

	requests := make(chan capturedRequest, 10)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)

		requests <- capturedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			auth:   r.Header.Get("Authorization"),
			body:   string(b),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body)) //nolint:errcheck
	}))

	t.Cleanup(server.Close)

	return server, requests
}

func newClient(t *testing.T, baseURL string) *dataservice.Client {
	t.Helper()

	client, err := dataservice.NewClient(dataservice.Config{
		BaseURL: baseURL + "/api",
		Token:   "secret",
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)

	return client
}

func TestGetAvailability(t *testing.T) {
	rq := require.New(t)

	server, requests := newServer(t, http.StatusOK, `{"rooms":[{"id":1,"beds":[{"id":2,"free":true}]}]}`)
	client := newClient(t, server.URL)

	params := url.Values{"hotel_id": {"42"}, "date_from": {"2026-06-01"}}

	payload, err := client.GetAvailability(context.Background(), "/hotel-availability/", params)
	rq.NoError(err)
	rq.JSONEq(`{"rooms":[{"id":1,"beds":[{"id":2,"free":true}]}]}`, string(payload))

	req := <-requests
	rq.Equal(http.MethodGet, req.method)
	rq.Equal("/api/hotel-availability/", req.path)
	rq.Equal(params, req.query)
	rq.Equal("Bearer secret", req.auth)
}

func TestGetAvailabilityErrors(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		status int
		body   string
		code   int
	}{
		{name: "Not found", status: http.StatusNotFound, body: `{"detail":"Not found."}`, code: http.StatusNotFound},
		{name: "Bad request", status: http.StatusBadRequest, body: `{"organization":["required"]}`, code: http.StatusBadRequest},
		{name: "Server error", status: http.StatusInternalServerError, body: `oops`, code: http.StatusInternalServerError},
		{name: "Not JSON", status: http.StatusOK, body: `<html></html>`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server, _ := newServer(t, tc.status, tc.body)
			client := newClient(t, server.URL)

			payload, err := client.GetAvailability(context.Background(), "/hotels/42/availability/", nil)
			rq.Error(err)
			rq.Nil(payload)

			respErr, ok := dataservice.AsResponseError(err)
			if tc.code == 0 {
				rq.False(ok)
				return
			}

			rq.True(ok)
			rq.Equal(tc.code, respErr.StatusCode())
			rq.Equal(tc.body, string(respErr.Body))
		})
	}
}

func TestGetHotel(t *testing.T) {
	rq := require.New(t)

	server, requests := newServer(t, http.StatusOK, `{
		"id": 42,
		"name": "Sea View",
		"organization": 3,
		"prices": [
			{"id": 7, "start_date": "2026-06-01", "end_date": null, "room_type": "room",
			 "price": "120.50", "purchase_price": "100.00", "profit": "20.50"}
		]
	}`)
	client := newClient(t, server.URL)

	hotel, err := client.GetHotel(context.Background(), "42", "3")
	rq.NoError(err)

	rq.Equal(entity.Hotel{
		ID:             "42",
		Name:           "Sea View",
		OrganizationID: "3",
		Prices: []entity.PriceRecord{
			{
				ID:            "7",
				StartDate:     "2026-06-01",
				RoomType:      "room",
				Price:         120.5,
				PurchasePrice: 100,
				Profit:        20.5,
			},
		},
	}, hotel)

	req := <-requests
	rq.Equal("/api/hotels/42/", req.path)
	rq.Equal("3", req.query.Get("organization"))
}

func TestGetHotelNotFound(t *testing.T) {
	rq := require.New(t)

	server, _ := newServer(t, http.StatusNotFound, `{"detail":"Not found."}`)
	client := newClient(t, server.URL)

	_, err := client.GetHotel(context.Background(), "42", "")
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.HotelNotFound, code)

	respErr, ok := dataservice.AsResponseError(err)
	rq.True(ok)
	rq.Equal(http.StatusNotFound, respErr.StatusCode())
}

func TestListHotels(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name string
		body string
	}{
		{name: "Plain list", body: `[{"id":1,"name":"A","organization":3},{"id":"b-2","name":"B"}]`},
		{name: "Page", body: `{"count":2,"next":null,"results":[{"id":1,"name":"A","organization":3},{"id":"b-2","name":"B"}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server, requests := newServer(t, http.StatusOK, tc.body)
			client := newClient(t, server.URL)

			hotels, err := client.ListHotels(context.Background(), "")
			rq.NoError(err)
			rq.Equal([]entity.Hotel{
				{ID: "1", Name: "A", OrganizationID: "3"},
				{ID: "b-2", Name: "B"},
			}, hotels)

			req := <-requests
			rq.Equal("/api/hotels/", req.path)
			rq.Empty(req.query)
		})
	}
}

func TestUpdateHotelPrices(t *testing.T) {
	rq := require.New(t)

	server, requests := newServer(t, http.StatusOK, `{"id":42,"name":"Sea View","prices":[]}`)
	client := newClient(t, server.URL)

	records := []entity.PriceRecord{
		{ID: "7", StartDate: "2026-06-01", EndDate: "2026-06-30", RoomType: "room", Price: 120, PurchasePrice: 100, Profit: 20},
		{StartDate: "2026-06-01", EndDate: "2026-06-30", RoomType: "double", Price: 120, PurchasePrice: 100, Profit: 20},
	}

	hotel, err := client.UpdateHotelPrices(context.Background(), "42", "3", records)
	rq.NoError(err)
	rq.Equal("Sea View", hotel.Name)

	req := <-requests
	rq.Equal(http.MethodPatch, req.method)
	rq.Equal("/api/hotels/42/", req.path)
	rq.JSONEq(`{"prices":[
		{"id":7,"start_date":"2026-06-01","end_date":"2026-06-30","room_type":"room","price":120,"purchase_price":100,"profit":20},
		{"start_date":"2026-06-01","end_date":"2026-06-30","room_type":"double","price":120,"purchase_price":100,"profit":20}
	]}`, req.body)
}

func TestUpdateHotelPricesRejected(t *testing.T) {
	rq := require.New(t)

	server, _ := newServer(t, http.StatusBadRequest, `{"prices":["invalid"]}`)
	client := newClient(t, server.URL)

	_, err := client.UpdateHotelPrices(context.Background(), "42", "", nil)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.ValidationError, code)
}

func TestClientWithoutToken(t *testing.T) {
	rq := require.New(t)

	server, requests := newServer(t, http.StatusOK, `[]`)

	client, err := dataservice.NewClient(dataservice.Config{BaseURL: server.URL})
	rq.NoError(err)

	_, err = client.ListHotels(context.Background(), "3")
	rq.NoError(err)

	req := <-requests
	rq.Empty(req.auth)
	rq.Equal("3", req.query.Get("organization"))
}

func TestStaticToken(t *testing.T) {
	rq := require.New(t)

	token := dataservice.StaticToken("secret")

	rq.Equal("secret", token.BearerToken())
	rq.ErrorIs(token.Authenticate(context.Background()), httpx.ErrNotRenewable)
}
