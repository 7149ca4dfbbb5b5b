package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"canteen/internal/domains/order/model"
	"canteen/internal/domains/order/model/dto"
	"canteen/shared/validator"
)

func TestCreateOrderRequest_Validation(t *testing.T) {
	validItems := []dto.FoodItemRequest{
		{Name: "tea", Price: 10, Quantity: 2},
	}

	tests := []struct {
		name    string
		req     dto.CreateOrderRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req: dto.CreateOrderRequest{
				RollNumber:  "21BCE1001",
				PhoneNumber: "9876543210",
				FoodItems:   validItems,
			},
			wantErr: false,
		},
		{
			name: "missing roll number",
			req: dto.CreateOrderRequest{
				PhoneNumber: "9876543210",
				FoodItems:   validItems,
			},
			wantErr: true,
		},
		{
			name: "phone number shorter than ten characters",
			req: dto.CreateOrderRequest{
				RollNumber:  "21BCE1001",
				PhoneNumber: "12345",
				FoodItems:   validItems,
			},
			wantErr: true,
		},
		{
			name: "empty food items",
			req: dto.CreateOrderRequest{
				RollNumber:  "21BCE1001",
				PhoneNumber: "9876543210",
				FoodItems:   []dto.FoodItemRequest{},
			},
			wantErr: true,
		},
		{
			name: "item without a name",
			req: dto.CreateOrderRequest{
				RollNumber:  "21BCE1001",
				PhoneNumber: "9876543210",
				FoodItems:   []dto.FoodItemRequest{{Price: 10, Quantity: 1}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateOrderRequest_ToFoodItems(t *testing.T) {
	req := dto.CreateOrderRequest{
		FoodItems: []dto.FoodItemRequest{
			{Name: "tea", Price: 10, Quantity: 2},
			{Name: "samosa", Price: 12.5, Quantity: 1},
		},
	}

	items := req.ToFoodItems()

	assert.Equal(t, []model.FoodItem{
		{Name: "tea", Price: 10, Quantity: 2},
		{Name: "samosa", Price: 12.5, Quantity: 1},
	}, items)
}

func TestOrderResponse_FromModel(t *testing.T) {
	collectedAt := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	url := "https://cdn.example.com/qr/ab12cd34.png"

	booking := model.Booking{
		BookingID:   "ab12cd34",
		Username:    "alice",
		RollNumber:  "21BCE1001",
		PhoneNumber: "9876543210",
		FoodItems:   []model.FoodItem{{Name: "tea", Price: 10, Quantity: 2}},
		Amount:      20,
		Status:      model.StatusCollected,
		QRCodeURL:   &url,
		CreatedAt:   collectedAt.Add(-time.Hour),
		CollectedAt: &collectedAt,
	}

	var res dto.OrderResponse
	res.FromModel(booking)

	assert.Equal(t, booking.BookingID, res.BookingID)
	assert.Equal(t, booking.Username, res.Username)
	assert.Equal(t, booking.FoodItems, res.FoodItems)
	assert.Equal(t, booking.Amount, res.Amount)
	assert.Equal(t, booking.Status, res.Status)
	assert.Equal(t, booking.QRCodeURL, res.QRCodeURL)
	assert.Equal(t, booking.CollectedAt, res.CollectedAt)
}

func TestGetOrdersResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		{BookingID: "aaaa1111"},
		{BookingID: "bbbb2222"},
	}

	var res dto.GetOrdersResponse
	res.FromModels(bookings, 12, 1, 10)

	assert.Len(t, res.Orders, 2)
	assert.Equal(t, 12, res.Metadata.Total)
	assert.Equal(t, 2, res.Metadata.TotalPage)
	assert.Equal(t, 1, res.Metadata.Page)
	assert.Equal(t, 10, res.Metadata.Limit)
}
