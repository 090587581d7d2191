package dataservice

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"

	"travel_console/internal/domain/entity"
	"travel_console/internal/domain/value"
	"travel_console/pkg/errcodes"
	"travel_console/pkg/httpx"
	"travel_console/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const maxResponseSize = 16 << 20

type Config struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	LogFieldMaxLen int
}

// Client talks to the remote data service that owns hotels, prices and
// availability.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}

	var transport http.RoundTripper = http.DefaultTransport

	if cfg.Token != "" {
		transport = httpx.NewAuthBearerRoundTripper(transport, StaticToken(cfg.Token))
	}

	transport = httpx.NewLoggingRoundTripper(
		transport,
		httpx.WithLogFieldMaxLen(cfg.LogFieldMaxLen),
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
	)

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
	}, nil
}

// GetAvailability requests one availability route and returns its payload
// untouched. Non-2xx answers are reported as *ResponseError.
func (c *Client) GetAvailability(ctx context.Context, path string, params url.Values) (entity.Availability, error) {
	body, err := c.do(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("GET %s: %w", path, errInvalidPayload)
	}

	return entity.Availability(body), nil
}

func (c *Client) GetHotel(ctx context.Context, hotelID, organizationID value.ID) (entity.Hotel, error) {
	body, err := c.do(ctx, http.MethodGet, hotelPath(hotelID), organizationParams(organizationID), nil)
	if err != nil {
		return entity.Hotel{}, codeError(err, errcodes.HotelNotFound)
	}

	var hotel entity.Hotel
	if err = json.Unmarshal(body, &hotel); err != nil {
		return entity.Hotel{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return hotel, nil
}

// ListHotels returns the hotels visible in an organization, or all
// hotels when organizationID is empty. Both plain lists and paginated
// {"results": [...]} answers are accepted; only the first page is read.
func (c *Client) ListHotels(ctx context.Context, organizationID value.ID) ([]entity.Hotel, error) {
	body, err := c.do(ctx, http.MethodGet, "/hotels/", organizationParams(organizationID), nil)
	if err != nil {
		return nil, codeError(err, errcodes.NotFound)
	}

	hotels, err := decodeHotels(body)
	if err != nil {
		return nil, fmt.Errorf("decodeHotels: %w", err)
	}

	return hotels, nil
}

type updatePricesRequest struct {
	Prices []entity.PriceRecord `json:"prices"`
}

// UpdateHotelPrices replaces the flat price list of a hotel.
func (c *Client) UpdateHotelPrices(
	ctx context.Context,
	hotelID, organizationID value.ID,
	records []entity.PriceRecord,
) (entity.Hotel, error) {
	body, err := c.do(
		ctx,
		http.MethodPatch,
		hotelPath(hotelID),
		organizationParams(organizationID),
		updatePricesRequest{Prices: records},
	)
	if err != nil {
		return entity.Hotel{}, codeError(err, errcodes.HotelNotFound)
	}

	var hotel entity.Hotel
	if err = json.Unmarshal(body, &hotel); err != nil {
		return entity.Hotel{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return hotel, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, payload any) ([]byte, error) {
	endpoint := c.baseURL.JoinPath(path)
	endpoint.RawQuery = params.Encode()

	var reqBody io.Reader = http.NoBody

	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal: %w", err)
		}

		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &ResponseError{
			Method: method,
			Path:   path,
			Status: resp.StatusCode,
			Body:   body,
		}
	}

	return body, nil
}

func hotelPath(hotelID value.ID) string {
	return "/hotels/" + url.PathEscape(hotelID.String()) + "/"
}

func organizationParams(organizationID value.ID) url.Values {
	params := url.Values{}

	if !organizationID.IsZero() {
		params.Set("organization", organizationID.String())
	}

	return params
}

type hotelPage struct {
	Results []entity.Hotel `json:"results"`
}

func decodeHotels(body []byte) ([]entity.Hotel, error) {
	if b := bytes.TrimSpace(body); len(b) > 0 && b[0] == '[' {
		var hotels []entity.Hotel
		if err := json.Unmarshal(b, &hotels); err != nil {
			return nil, fmt.Errorf("json.Unmarshal: %w", err)
		}

		return hotels, nil
	}

	var page hotelPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return page.Results, nil
}
