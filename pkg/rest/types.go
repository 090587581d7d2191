// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import (
	"encoding/json"

	"travel_console/internal/domain/value"
)

// PriceRecord Цена в плоском виде, как её хранит сервис данных
type PriceRecord struct {
	ID            value.ID       `json:"id,omitempty"`
	StartDate     value.Date     `json:"start_date"`
	EndDate       value.Date     `json:"end_date"`
	RoomType      value.RoomType `json:"room_type"`
	Price         value.Number   `json:"price"`
	PurchasePrice value.Number   `json:"purchase_price"`
	Profit        value.Number   `json:"profit"`
}

// PriceSection Секция редактора цен: один период дат
type PriceSection struct {
	ID            value.ID       `json:"id,omitempty"`
	StartDate     value.Date     `json:"start_date"`
	EndDate       value.Date     `json:"end_date"`
	RoomType      value.RoomType `json:"room_type"`
	Price         value.Amount   `json:"price"`
	PurchasePrice value.Amount   `json:"purchase_price"`
	BedPrices     []BedPrice     `json:"bed_prices"`
}

// BedPrice Цена за место
type BedPrice struct {
	ID            value.ID       `json:"id,omitempty"`
	Type          value.RoomType `json:"type"`
	Price         value.Amount   `json:"price"`
	PurchasePrice value.Amount   `json:"purchase_price"`
}

type FlattenRequest struct {
	Sections []PriceSection `json:"sections" validate:"required"`
}

type FlattenResponse struct {
	Records []PriceRecord `json:"records"`

	// Warning Предупреждение о некорректных периодах дат
	Warning string `json:"warning,omitempty"`
}

type ReconstructRequest struct {
	Records []PriceRecord `json:"records" validate:"required"`
}

type ReconstructResponse struct {
	Sections []PriceSection `json:"sections"`
}

type HotelPriceSections struct {
	HotelID        value.ID       `json:"hotel_id"`
	Name           string         `json:"name"`
	OrganizationID value.ID       `json:"organization,omitempty"`
	Sections       []PriceSection `json:"sections"`
}

type SavePriceSectionsRequest struct {
	OrganizationID value.ID       `json:"organization,omitempty"`
	Sections       []PriceSection `json:"sections" validate:"required"`
}

type SavePriceSectionsResponse struct {
	Records []PriceRecord `json:"records"`
	Warning string        `json:"warning,omitempty"`
}

// HotelPath Параметры пути запросов по отелю
type HotelPath struct {
	ID string `validate:"required,max=64,printascii,excludesall=/?#%"`
}

// AvailabilityParams Параметры запроса доступности
type AvailabilityParams struct {
	DateFrom     string `validate:"required,datetime=2006-01-02"`
	DateTo       string `validate:"required,datetime=2006-01-02"`
	Organization string `validate:"omitempty,max=64"`
}

// AvailabilityStatus Результат запроса доступности
type AvailabilityStatus string

const (
	AvailabilityStatusOK                 AvailabilityStatus = "ok"
	AvailabilityStatusInvalidParameters  AvailabilityStatus = "invalid_parameters"
	AvailabilityStatusFeatureUnavailable AvailabilityStatus = "feature_unavailable"
	AvailabilityStatusError              AvailabilityStatus = "error"
)

type AvailabilityResponse struct {
	Status  AvailabilityStatus `json:"status"`
	Message string             `json:"message"`
	Warning string             `json:"warning,omitempty"`

	// Data Доступность номеров в формате сервиса данных
	Data json.RawMessage `json:"data,omitempty"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
