package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"canteen/shared"

	"github.com/google/uuid"
)

const (
	CollectionName       = "bookings"
	MirrorCollectionName = "user_bookings"
	EntityName           = "booking"

	FieldBookingID   = "_id"
	FieldUsername    = "username"
	FieldStatus      = "status"
	FieldCreatedAt   = "created_at"
	FieldUpdatedAt   = "updated_at"
	FieldCollectedAt = "collected_at"
)

// Booking status moves forward only: pending|confirmed -> collected.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCollected = "collected"
)

// InvalidAmount is the sentinel returned by CalculateTotal when any item
// carries a negative price or quantity. The whole order fails closed.
const InvalidAmount = float64(-1)

const bookingIDLength = 8

type FoodItem struct {
	Name     string  `bson:"name"     json:"name"`
	Price    float64 `bson:"price"    json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

type Booking struct {
	BookingID   string     `bson:"_id"                    json:"booking_id"`
	Username    string     `bson:"username"               json:"username"`
	RollNumber  string     `bson:"roll_number"            json:"roll_number"`
	PhoneNumber string     `bson:"phone_number"           json:"phone_number"`
	FoodItems   []FoodItem `bson:"food_items"             json:"food_items"`
	Amount      float64    `bson:"amount"                 json:"amount"`
	Status      string     `bson:"status"                 json:"status"`
	QRCodeURL   *string    `bson:"qr_code_url,omitempty"  json:"qr_code_url,omitempty"`
	CreatedAt   time.Time  `bson:"created_at"             json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at"             json:"updated_at"`
	CollectedAt *time.Time `bson:"collected_at,omitempty" json:"collected_at,omitempty"`
}

// QRPayload is the document encoded into the booking QR image and handed back
// by the scanner during verification.
type QRPayload struct {
	BookingID   string `json:"booking_id"`
	PhoneNumber string `json:"phone_number"`
}

func (p QRPayload) Encode() (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to marshal qr payload: %w", err)
	}

	return string(raw), nil
}

// ParseQRPayload decodes a scanned QR string. A malformed payload is a
// distinct error from an unknown booking.
func ParseQRPayload(scanned string) (QRPayload, error) {
	var payload QRPayload

	if err := json.Unmarshal([]byte(scanned), &payload); err != nil {
		return payload, fmt.Errorf("malformed qr payload: %w", err)
	}

	if payload.BookingID == "" {
		return payload, fmt.Errorf("malformed qr payload: missing booking_id")
	}

	return payload, nil
}

// CalculateTotal sums price*quantity over the items, rounded to two decimal
// places. A single negative price or quantity anywhere invalidates the whole
// order; the sentinel is returned instead of a partial sum.
func CalculateTotal(items []FoodItem) float64 {
	total := 0.0

	for _, item := range items {
		if item.Price < 0 || item.Quantity < 0 {
			return InvalidAmount
		}

		total += item.Price * float64(item.Quantity)
	}

	return shared.Round2(total)
}

// NewBookingID generates a short 8-character booking identifier.
func NewBookingID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")

	return id[:bookingIDLength]
}
