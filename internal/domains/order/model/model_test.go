package model_test

import (
	"testing"

	"canteen/internal/domains/order/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []model.FoodItem
		want  float64
	}{
		{
			name:  "empty sequence",
			items: []model.FoodItem{},
			want:  0,
		},
		{
			name: "single item",
			items: []model.FoodItem{
				{Name: "tea", Price: 10, Quantity: 2},
			},
			want: 20,
		},
		{
			name: "multiple items",
			items: []model.FoodItem{
				{Name: "tea", Price: 10, Quantity: 2},
				{Name: "samosa", Price: 12.5, Quantity: 3},
				{Name: "water", Price: 0, Quantity: 1},
			},
			want: 57.5,
		},
		{
			name: "fractional prices round to two places",
			items: []model.FoodItem{
				{Name: "candy", Price: 0.1, Quantity: 3},
			},
			want: 0.3,
		},
		{
			name: "negative price invalidates the whole order",
			items: []model.FoodItem{
				{Name: "tea", Price: 10, Quantity: 2},
				{Name: "bogus", Price: -1, Quantity: 1},
			},
			want: model.InvalidAmount,
		},
		{
			name: "negative quantity invalidates the whole order",
			items: []model.FoodItem{
				{Name: "bogus", Price: 5, Quantity: -2},
				{Name: "tea", Price: 10, Quantity: 2},
			},
			want: model.InvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, model.CalculateTotal(tt.items), 1e-9)
		})
	}
}

func TestQRPayloadRoundTrip(t *testing.T) {
	payload := model.QRPayload{
		BookingID:   "ab12cd34",
		PhoneNumber: "9999999999",
	}

	encoded, err := payload.Encode()
	require.NoError(t, err)

	decoded, err := model.ParseQRPayload(encoded)
	require.NoError(t, err)

	assert.Equal(t, payload, decoded)
}

func TestParseQRPayload(t *testing.T) {
	tests := []struct {
		name    string
		scanned string
		wantErr bool
	}{
		{
			name:    "valid payload",
			scanned: `{"booking_id":"ab12cd34","phone_number":"9999999999"}`,
			wantErr: false,
		},
		{
			name:    "not json",
			scanned: "ab12cd34",
			wantErr: true,
		},
		{
			name:    "missing booking id",
			scanned: `{"phone_number":"9999999999"}`,
			wantErr: true,
		},
		{
			name:    "empty string",
			scanned: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.ParseQRPayload(tt.scanned)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewBookingID(t *testing.T) {
	seen := map[string]bool{}

	for range 100 {
		id := model.NewBookingID()

		assert.Len(t, id, 8)
		assert.False(t, seen[id], "booking ids must not repeat")
		seen[id] = true
	}
}
