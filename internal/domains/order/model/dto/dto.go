package dto

import (
	"time"

	"canteen/internal/domains/order/model"
	gDto "canteen/shared/dto"
)

type FoodItemRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CreateOrderRequest struct {
	RollNumber  string            `json:"roll_number"          validate:"required"`
	PhoneNumber string            `json:"phone_number"         validate:"required,min=10"`
	FoodItems   []FoodItemRequest `json:"food_items"           validate:"required,min=1,dive"`
	PaymentID   string            `json:"payment_id,omitempty"`
}

func (r *CreateOrderRequest) ToFoodItems() []model.FoodItem {
	items := make([]model.FoodItem, 0, len(r.FoodItems))

	for _, item := range r.FoodItems {
		items = append(items, model.FoodItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return items
}

type OrderData struct {
	RollNumber  string           `json:"roll_number"`
	PhoneNumber string           `json:"phone_number"`
	FoodItems   []model.FoodItem `json:"food_items"`
	Amount      float64          `json:"amount"`
}

type CreateOrderResponse struct {
	Status    string    `json:"status"`
	BookingID string    `json:"booking_id"`
	QRCode    string    `json:"qr_code"` // base64-encoded PNG
	OrderData OrderData `json:"order_data"`
}

// VerifyRequest carries either a bare booking id or the raw scanned QR string.
type VerifyRequest struct {
	BookingID string `json:"booking_id,omitempty"`
	ScannedQR string `json:"scanned_qr,omitempty"`
}

type VerifyResponse struct {
	BookingID   string           `json:"booking_id"`
	CollectedAt time.Time        `json:"collected_at"`
	FoodItems   []model.FoodItem `json:"food_items"`
	Amount      float64          `json:"amount"`
}

type OrderResponse struct {
	BookingID   string           `json:"booking_id"`
	Username    string           `json:"username"`
	RollNumber  string           `json:"roll_number"`
	PhoneNumber string           `json:"phone_number"`
	FoodItems   []model.FoodItem `json:"food_items"`
	Amount      float64          `json:"amount"`
	Status      string           `json:"status"`
	QRCodeURL   *string          `json:"qr_code_url,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	CollectedAt *time.Time       `json:"collected_at,omitempty"`
}

func (o *OrderResponse) FromModel(booking model.Booking) {
	o.BookingID = booking.BookingID
	o.Username = booking.Username
	o.RollNumber = booking.RollNumber
	o.PhoneNumber = booking.PhoneNumber
	o.FoodItems = booking.FoodItems
	o.Amount = booking.Amount
	o.Status = booking.Status
	o.QRCodeURL = booking.QRCodeURL
	o.CreatedAt = booking.CreatedAt
	o.CollectedAt = booking.CollectedAt
}

type GetOrdersResponse struct {
	Orders   []OrderResponse `json:"orders"`
	Metadata gDto.Metadata   `json:"metadata"`
}

func (g *GetOrdersResponse) FromModels(bookings []model.Booking, total, page, limit int) {
	g.Orders = make([]OrderResponse, 0, len(bookings))

	for _, booking := range bookings {
		var res OrderResponse
		res.FromModel(booking)
		g.Orders = append(g.Orders, res)
	}

	g.Metadata = gDto.NewMetadata(total, page, limit)
}
