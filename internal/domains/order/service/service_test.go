package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"

	"canteen/config"
	kafkaMocks "canteen/infras/kafka/mocks"
	mongoInfra "canteen/infras/mongo"
	"canteen/infras/otel/mocks"
	qrMocks "canteen/infras/qr/mocks"
	razorpayMocks "canteen/infras/razorpay/mocks"
	s3Mocks "canteen/infras/s3/mocks"
	orderMocks "canteen/internal/domains/order/mocks"
	"canteen/internal/domains/order/model"
	"canteen/internal/domains/order/model/dto"
	"canteen/internal/domains/order/repository"
	"canteen/internal/domains/order/service"
	"canteen/shared/failure"
)

func newOrderService(t *testing.T, cfg *config.Config) (
	service.Order,
	*orderMocks.MockOrder,
	*qrMocks.MockCodec,
	*razorpayMocks.MockGateway,
	*kafkaMocks.MockClient,
	*s3Mocks.MockS3,
) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockQR := qrMocks.NewMockCodec(ctrl)
	mockGateway := razorpayMocks.NewMockGateway(ctrl)
	mockProducer := kafkaMocks.NewMockClient(ctrl)
	mockStorage := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, cfg, mockOtel, mockQR, mockGateway, mockProducer, mockStorage)

	return svc, mockRepo, mockQR, mockGateway, mockProducer, mockStorage
}

func runTransaction(mockRepo *orderMocks.MockOrder) {
	mockRepo.EXPECT().
		ExecuteTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn mongoInfra.TransactionFunc) error {
			return fn(mongoDriver.NewSessionContext(ctx, nil))
		})
}

func TestOrderService_Create(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.Razorpay.Enable = true

	teaTimesTwo := []dto.FoodItemRequest{
		{Name: "tea", Price: 10, Quantity: 2},
	}

	tests := []struct {
		name       string
		req        dto.CreateOrderRequest
		setupMock  func(mockRepo *orderMocks.MockOrder, mockQR *qrMocks.MockCodec, mockGateway *razorpayMocks.MockGateway)
		wantErr    bool
		wantCode   int
		wantStatus string
		wantAmount float64
	}{
		{
			name: "captured payment creates confirmed booking",
			req: dto.CreateOrderRequest{
				RollNumber:  "21BCE1001",
				PhoneNumber: "9876543210",
				FoodItems:   teaTimesTwo,
				PaymentID:   "pay_123",
			},
			setupMock: func(mockRepo *orderMocks.MockOrder, mockQR *qrMocks.MockCodec, mockGateway *razorpayMocks.MockGateway) {
				mockGateway.EXPECT().
					ConfirmCaptured(gomock.Any(), "pay_123").
					Return(true, nil)

				mockQR.EXPECT().
					Encode(gomock.Any()).
					Return([]byte("png-bytes"), nil)

				runTransaction(mockRepo)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				mockRepo.EXPECT().UpsertMirror(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: model.StatusConfirmed,
			wantAmount: 20,
		},
		{
			name: "no payment id creates pending booking",
			req: dto.CreateOrderRequest{
				RollNumber:  "21BCE1001",
				PhoneNumber: "9876543210",
				FoodItems:   teaTimesTwo,
			},
			setupMock: func(mockRepo *orderMocks.MockOrder, mockQR *qrMocks.MockCodec, mockGateway *razorpayMocks.MockGateway) {
				mockQR.EXPECT().
					Encode(gomock.Any()).
					Return([]byte("png-bytes"), nil)

				runTransaction(mockRepo)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				mockRepo.EXPECT().UpsertMirror(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: model.StatusPending,
			wantAmount: 20,
		},
		{
			name: "uncaptured payment is rejected",
			req: dto.CreateOrderRequest{
				RollNumber:  "21BCE1001",
				PhoneNumber: "9876543210",
				FoodItems:   teaTimesTwo,
				PaymentID:   "pay_123",
			},
			setupMock: func(mockRepo *orderMocks.MockOrder, mockQR *qrMocks.MockCodec, mockGateway *razorpayMocks.MockGateway) {
				mockGateway.EXPECT().
					ConfirmCaptured(gomock.Any(), "pay_123").
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "negative price fails closed without touching storage",
			req: dto.CreateOrderRequest{
				RollNumber:  "21BCE1001",
				PhoneNumber: "9876543210",
				FoodItems: []dto.FoodItemRequest{
					{Name: "tea", Price: 10, Quantity: 2},
					{Name: "samosa", Price: -5, Quantity: 1},
				},
			},
			setupMock: func(mockRepo *orderMocks.MockOrder, mockQR *qrMocks.MockCodec, mockGateway *razorpayMocks.MockGateway) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "zero total is rejected",
			req: dto.CreateOrderRequest{
				RollNumber:  "21BCE1001",
				PhoneNumber: "9876543210",
				FoodItems: []dto.FoodItemRequest{
					{Name: "tea", Price: 10, Quantity: 0},
				},
			},
			setupMock: func(mockRepo *orderMocks.MockOrder, mockQR *qrMocks.MockCodec, mockGateway *razorpayMocks.MockGateway) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "transaction failure bubbles up",
			req: dto.CreateOrderRequest{
				RollNumber:  "21BCE1001",
				PhoneNumber: "9876543210",
				FoodItems:   teaTimesTwo,
			},
			setupMock: func(mockRepo *orderMocks.MockOrder, mockQR *qrMocks.MockCodec, mockGateway *razorpayMocks.MockGateway) {
				mockQR.EXPECT().
					Encode(gomock.Any()).
					Return([]byte("png-bytes"), nil)

				mockRepo.EXPECT().
					ExecuteTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockQR, mockGateway, _, _ := newOrderService(t, cfg)
			tt.setupMock(mockRepo, mockQR, mockGateway)

			res, err := svc.Create(context.Background(), "alice", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantAmount, res.OrderData.Amount)
			assert.Len(t, res.BookingID, 8)
			assert.NotEmpty(t, res.QRCode)
		})
	}
}

func TestOrderService_Create_QRPayloadCarriesBookingID(t *testing.T) {
	cfg := &config.Config{}

	svc, mockRepo, mockQR, _, _, _ := newOrderService(t, cfg)

	var encodedPayload string
	mockQR.EXPECT().
		Encode(gomock.Any()).
		DoAndReturn(func(payload string) ([]byte, error) {
			encodedPayload = payload
			return []byte("png-bytes"), nil
		})

	runTransaction(mockRepo)
	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().UpsertMirror(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Create(context.Background(), "alice", dto.CreateOrderRequest{
		RollNumber:  "21BCE1001",
		PhoneNumber: "9876543210",
		FoodItems:   []dto.FoodItemRequest{{Name: "tea", Price: 10, Quantity: 2}},
	})
	assert.NoError(t, err)

	var payload model.QRPayload
	assert.NoError(t, json.Unmarshal([]byte(encodedPayload), &payload))
	assert.Equal(t, res.BookingID, payload.BookingID)
	assert.Equal(t, "9876543210", payload.PhoneNumber)
}

func TestOrderService_Verify(t *testing.T) {
	cfg := &config.Config{}

	collectedAt := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)

	confirmedBooking := model.Booking{
		BookingID:   "ab12cd34",
		Username:    "alice",
		PhoneNumber: "9876543210",
		FoodItems:   []model.FoodItem{{Name: "tea", Price: 10, Quantity: 2}},
		Amount:      20,
		Status:      model.StatusConfirmed,
	}

	tests := []struct {
		name        string
		req         dto.VerifyRequest
		setupMock   func(mockRepo *orderMocks.MockOrder)
		wantErr     bool
		wantCode    int
		wantMessage string
	}{
		{
			name: "confirmed booking transitions to collected",
			req:  dto.VerifyRequest{BookingID: "ab12cd34"},
			setupMock: func(mockRepo *orderMocks.MockOrder) {
				mockRepo.EXPECT().
					Get(gomock.Any(), "ab12cd34").
					Return(confirmedBooking, nil)

				runTransaction(mockRepo)
				mockRepo.EXPECT().
					MarkCollected(gomock.Any(), "ab12cd34", gomock.Any()).
					Return(nil)
				mockRepo.EXPECT().
					MarkMirrorCollected(gomock.Any(), "alice", "ab12cd34", gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "scanned qr resolves the booking",
			req:  dto.VerifyRequest{ScannedQR: `{"booking_id":"ab12cd34","phone_number":"9876543210"}`},
			setupMock: func(mockRepo *orderMocks.MockOrder) {
				mockRepo.EXPECT().
					Get(gomock.Any(), "ab12cd34").
					Return(confirmedBooking, nil)

				runTransaction(mockRepo)
				mockRepo.EXPECT().
					MarkCollected(gomock.Any(), "ab12cd34", gomock.Any()).
					Return(nil)
				mockRepo.EXPECT().
					MarkMirrorCollected(gomock.Any(), "alice", "ab12cd34", gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "malformed qr payload",
			req:  dto.VerifyRequest{ScannedQR: "not-json"},
			setupMock: func(mockRepo *orderMocks.MockOrder) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "unknown booking leaves storage untouched",
			req:  dto.VerifyRequest{BookingID: "nope0000"},
			setupMock: func(mockRepo *orderMocks.MockOrder) {
				mockRepo.EXPECT().
					Get(gomock.Any(), "nope0000").
					Return(model.Booking{}, repository.ErrNotFound)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "already collected names the first timestamp",
			req:  dto.VerifyRequest{BookingID: "ab12cd34"},
			setupMock: func(mockRepo *orderMocks.MockOrder) {
				collected := confirmedBooking
				collected.Status = model.StatusCollected
				collected.CollectedAt = &collectedAt

				mockRepo.EXPECT().
					Get(gomock.Any(), "ab12cd34").
					Return(collected, nil)
			},
			wantErr:     true,
			wantCode:    409,
			wantMessage: "booking already collected at 2025-03-01T12:30:00Z",
		},
		{
			name: "pending booking is not collectable",
			req:  dto.VerifyRequest{BookingID: "ab12cd34"},
			setupMock: func(mockRepo *orderMocks.MockOrder) {
				pending := confirmedBooking
				pending.Status = model.StatusPending

				mockRepo.EXPECT().
					Get(gomock.Any(), "ab12cd34").
					Return(pending, nil)
			},
			wantErr:     true,
			wantCode:    400,
			wantMessage: "booking is not confirmed",
		},
		{
			name: "concurrent collection surfaces as conflict",
			req:  dto.VerifyRequest{BookingID: "ab12cd34"},
			setupMock: func(mockRepo *orderMocks.MockOrder) {
				mockRepo.EXPECT().
					Get(gomock.Any(), "ab12cd34").
					Return(confirmedBooking, nil)

				runTransaction(mockRepo)
				mockRepo.EXPECT().
					MarkCollected(gomock.Any(), "ab12cd34", gomock.Any()).
					Return(repository.ErrNotFound)
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, _, _, _ := newOrderService(t, cfg)
			tt.setupMock(mockRepo)

			res, err := svc.Verify(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
				if tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, err.Error())
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "ab12cd34", res.BookingID)
			assert.False(t, res.CollectedAt.IsZero())
			assert.Equal(t, confirmedBooking.FoodItems, res.FoodItems)
			assert.Equal(t, confirmedBooking.Amount, res.Amount)
		})
	}
}

func TestOrderService_Get(t *testing.T) {
	cfg := &config.Config{}

	booking := model.Booking{
		BookingID: "ab12cd34",
		Username:  "alice",
		Status:    model.StatusConfirmed,
	}

	tests := []struct {
		name      string
		username  string
		role      string
		setupMock func(mockRepo *orderMocks.MockOrder)
		wantErr   bool
		wantCode  int
	}{
		{
			name:     "owner sees own booking",
			username: "alice",
			role:     "user",
			setupMock: func(mockRepo *orderMocks.MockOrder) {
				mockRepo.EXPECT().Get(gomock.Any(), "ab12cd34").Return(booking, nil)
			},
		},
		{
			name:     "admin sees any booking",
			username: "staff",
			role:     "admin",
			setupMock: func(mockRepo *orderMocks.MockOrder) {
				mockRepo.EXPECT().Get(gomock.Any(), "ab12cd34").Return(booking, nil)
			},
		},
		{
			name:     "other user cannot probe booking ids",
			username: "bob",
			role:     "user",
			setupMock: func(mockRepo *orderMocks.MockOrder) {
				mockRepo.EXPECT().Get(gomock.Any(), "ab12cd34").Return(booking, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, _, _, _ := newOrderService(t, cfg)
			tt.setupMock(mockRepo)

			res, err := svc.Get(context.Background(), tt.username, tt.role, "ab12cd34")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, booking.BookingID, res.BookingID)
		})
	}
}

func TestOrderService_History(t *testing.T) {
	cfg := &config.Config{}

	svc, mockRepo, _, _, _, _ := newOrderService(t, cfg)

	bookings := []model.Booking{
		{BookingID: "aaaa1111", Username: "alice"},
		{BookingID: "bbbb2222", Username: "alice"},
	}

	mockRepo.EXPECT().
		GetByOwner(gomock.Any(), "alice", int64(10), int64(0)).
		Return(bookings, nil)
	mockRepo.EXPECT().
		CountByOwner(gomock.Any(), "alice").
		Return(12, nil)

	res, err := svc.History(context.Background(), "alice", 1, 10)

	assert.NoError(t, err)
	assert.Len(t, res.Orders, 2)
	assert.Equal(t, 12, res.Metadata.Total)
	assert.Equal(t, 2, res.Metadata.TotalPage)
}

func TestOrderService_Recent(t *testing.T) {
	cfg := &config.Config{}

	svc, mockRepo, _, _, _, _ := newOrderService(t, cfg)

	bookings := []model.Booking{
		{BookingID: "aaaa1111", Username: "alice"},
	}

	mockRepo.EXPECT().
		GetByOwner(gomock.Any(), "alice", int64(5), int64(0)).
		Return(bookings, nil)

	res, err := svc.Recent(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Len(t, res.Orders, 1)
}
