package add_line_item

import (
	"time"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
	"github.com/m04kA/TourOperator-BookingService/internal/service/wizard/models"
	addLineItem "github.com/m04kA/TourOperator-BookingService/internal/usecase/add_line_item"
)

// AddLineItemRequest HTTP request model
type AddLineItemRequest struct {
	Category  string  `json:"category"`          // flight | accommodation | vehicle | activity
	ObjectID  int64   `json:"objectId"`          // идентификатор объекта каталога
	StartDate string  `json:"startDate"`         // YYYY-MM-DD
	EndDate   *string `json:"endDate,omitempty"` // YYYY-MM-DD
	Quantity  int     `json:"quantity,omitempty"`
	IsReturn  bool    `json:"isReturn,omitempty"`

	PickupLocation  string `json:"pickupLocation,omitempty"`
	DropoffLocation string `json:"dropoffLocation,omitempty"`
}

// AddLineItemResponse HTTP response model
type AddLineItemResponse struct {
	Session  models.SessionResponse `json:"session"`
	ItemID   string                 `json:"itemId"`
	Price    float64                `json:"price"`
	Warnings []string               `json:"warnings,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddLineItemRequest) ToUseCaseRequest(sessionID string, operatorID int64) (*addLineItem.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	req := &addLineItem.Request{
		SessionID:       sessionID,
		OperatorID:      operatorID,
		Category:        r.Category,
		ObjectID:        r.ObjectID,
		StartDate:       startDate,
		Quantity:        r.Quantity,
		IsReturn:        r.IsReturn,
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
	}

	if r.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *addLineItem.Response) AddLineItemResponse {
	return AddLineItemResponse{
		Session:  models.FromDomainSession(resp.Session),
		ItemID:   resp.ItemID,
		Price:    resp.Price,
		Warnings: resp.Warnings,
	}
}
