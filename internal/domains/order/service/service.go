package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/order_service_mock.go -package=mocks

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"canteen/config"
	"canteen/infras/kafka"
	"canteen/infras/otel"
	"canteen/infras/qr"
	"canteen/infras/razorpay"
	"canteen/infras/s3"
	"canteen/internal/domains/order/model"
	"canteen/internal/domains/order/model/dto"
	"canteen/internal/domains/order/repository"
	"canteen/shared/constant"
	"canteen/shared/failure"
	"canteen/shared/timezone"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	EventOrderCreated   = "order.created"
	EventOrderCollected = "order.collected"

	qrArchiveDirectory = "qr"
)

type Order interface {
	Create(ctx context.Context, username string, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error)
	Verify(ctx context.Context, req dto.VerifyRequest) (dto.VerifyResponse, error)
	Get(ctx context.Context, username, role, bookingID string) (dto.OrderResponse, error)
	History(ctx context.Context, username string, page, limit int) (dto.GetOrdersResponse, error)
	Recent(ctx context.Context, username string) (dto.GetOrdersResponse, error)
}

type serviceImpl struct {
	orderRepo repository.Order
	cfg       *config.Config
	otel      otel.Otel
	qrCodec   qr.Codec
	gateway   razorpay.Gateway
	producer  kafka.Client
	storage   s3.S3
}

func New(
	orderRepo repository.Order,
	cfg *config.Config,
	otel otel.Otel,
	qrCodec qr.Codec,
	gateway razorpay.Gateway,
	producer kafka.Client,
	storage s3.S3,
) Order {
	return &serviceImpl{
		orderRepo: orderRepo,
		cfg:       cfg,
		otel:      otel,
		qrCodec:   qrCodec,
		gateway:   gateway,
		producer:  producer,
		storage:   storage,
	}
}

func (s *serviceImpl) Create(ctx context.Context, username string, req dto.CreateOrderRequest) (res dto.CreateOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	items := req.ToFoodItems()

	amount := model.CalculateTotal(items)
	if amount == model.InvalidAmount {
		return res, failure.BadRequestFromString("food items contain a negative price or quantity")
	}

	if amount <= 0 {
		return res, failure.BadRequestFromString("order total must be greater than zero")
	}

	status := model.StatusPending

	if req.PaymentID != "" {
		if !s.cfg.External.Razorpay.Enable {
			return res, failure.BadRequestFromString("payments are not enabled")
		}

		captured, err := s.gateway.ConfirmCaptured(ctx, req.PaymentID)
		if err != nil {
			log.Error().Err(err).Str("payment_id", req.PaymentID).Msg("failed to confirm payment")

			return res, fmt.Errorf("failed to confirm payment: %w", err)
		}

		if !captured {
			return res, failure.BadRequestFromString("payment has not been captured")
		}

		status = model.StatusConfirmed
	}

	now := timezone.Now()
	booking := model.Booking{
		BookingID:   model.NewBookingID(),
		Username:    username,
		RollNumber:  req.RollNumber,
		PhoneNumber: req.PhoneNumber,
		FoodItems:   items,
		Amount:      amount,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	payload, err := model.QRPayload{
		BookingID:   booking.BookingID,
		PhoneNumber: booking.PhoneNumber,
	}.Encode()
	if err != nil {
		log.Error().Err(err).Msg("failed to encode qr payload")

		return res, fmt.Errorf("failed to encode qr payload: %w", err)
	}

	png, err := s.qrCodec.Encode(payload)
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.BookingID).Msg("failed to render qr image")

		return res, fmt.Errorf("failed to render qr image: %w", err)
	}

	if s.cfg.External.S3.Enable {
		url, err := s.storage.UploadFileBytes(ctx, constant.Empty, qrArchiveDirectory, booking.BookingID+".png", constant.ContentTypePNG, png)
		if err != nil {
			// The archive copy is best effort; the inline image still ships.
			log.Warn().Err(err).Str("booking_id", booking.BookingID).Msg("failed to archive qr image")
		} else {
			booking.QRCodeURL = &url
		}
	}

	// Ledger and mirror commit together or not at all.
	err = s.orderRepo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.orderRepo.Insert(sessCtx, booking); err != nil {
			return err
		}

		return s.orderRepo.UpsertMirror(sessCtx, booking)
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.BookingID).Msg("failed to persist booking")

		return res, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.publishEvent(ctx, EventOrderCreated, booking)

	res = dto.CreateOrderResponse{
		Status:    booking.Status,
		BookingID: booking.BookingID,
		QRCode:    base64.StdEncoding.EncodeToString(png),
		OrderData: dto.OrderData{
			RollNumber:  booking.RollNumber,
			PhoneNumber: booking.PhoneNumber,
			FoodItems:   booking.FoodItems,
			Amount:      booking.Amount,
		},
	}

	return res, nil
}

// Verify transitions a confirmed booking to collected. The checks run in a
// fixed order: unknown booking, already collected, not yet confirmed.
func (s *serviceImpl) Verify(ctx context.Context, req dto.VerifyRequest) (res dto.VerifyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookingID := req.BookingID
	if bookingID == "" {
		payload, err := model.ParseQRPayload(req.ScannedQR)
		if err != nil {
			return res, failure.BadRequest(err)
		}

		bookingID = payload.BookingID
	}

	booking, err := s.orderRepo.Get(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return res, failure.NotFound(model.EntityName)
		}

		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to load booking for verification")

		return res, fmt.Errorf("failed to load booking: %w", err)
	}

	if booking.Status == model.StatusCollected {
		collectedAt := constant.Empty
		if booking.CollectedAt != nil {
			collectedAt = booking.CollectedAt.Format(constant.DateFormat)
		}

		return res, failure.Conflict(fmt.Sprintf("booking already collected at %s", collectedAt))
	}

	if booking.Status != model.StatusConfirmed {
		return res, failure.BadRequestFromString("booking is not confirmed")
	}

	now := timezone.Now()

	err = s.orderRepo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.orderRepo.MarkCollected(sessCtx, booking.BookingID, now); err != nil {
			return err
		}

		return s.orderRepo.MarkMirrorCollected(sessCtx, booking.Username, booking.BookingID, now)
	})
	if err != nil {
		// A concurrent verifier may have won the race between the read
		// above and this write.
		if errors.Is(err, repository.ErrNotFound) {
			return res, failure.Conflict("booking already collected")
		}

		log.Error().Err(err).Str("booking_id", booking.BookingID).Msg("failed to mark booking collected")

		return res, fmt.Errorf("failed to mark booking collected: %w", err)
	}

	booking.Status = model.StatusCollected
	booking.CollectedAt = &now
	booking.UpdatedAt = now
	s.publishEvent(ctx, EventOrderCollected, booking)

	res = dto.VerifyResponse{
		BookingID:   booking.BookingID,
		CollectedAt: now,
		FoodItems:   booking.FoodItems,
		Amount:      booking.Amount,
	}

	return res, nil
}

// Get returns a single booking. Owners see their own bookings; admins see any.
func (s *serviceImpl) Get(ctx context.Context, username, role, bookingID string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.orderRepo.Get(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return res, failure.NotFound(model.EntityName)
		}

		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to load booking")

		return res, fmt.Errorf("failed to load booking: %w", err)
	}

	if booking.Username != username && role != constant.RoleAdmin {
		// Reported as not found so that booking ids cannot be probed.
		return res, failure.NotFound(model.EntityName)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) History(ctx context.Context, username string, page, limit int) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.History")
	defer scope.End()
	defer scope.TraceIfError(err)

	offset := int64((page - 1) * limit)

	bookings, err := s.orderRepo.GetByOwner(ctx, username, int64(limit), offset)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("failed to load booking history")

		return res, fmt.Errorf("failed to load booking history: %w", err)
	}

	total, err := s.orderRepo.CountByOwner(ctx, username)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	res.FromModels(bookings, total, page, limit)

	return res, nil
}

func (s *serviceImpl) Recent(ctx context.Context, username string) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.Recent")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.orderRepo.GetByOwner(ctx, username, constant.RecentOrdersLimit, 0)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("failed to load recent bookings")

		return res, fmt.Errorf("failed to load recent bookings: %w", err)
	}

	res.FromModels(bookings, len(bookings), constant.DefaultValuePage, constant.RecentOrdersLimit)

	return res, nil
}

// publishEvent fires the lifecycle event after the transaction has committed.
// Delivery is async and never fails the request.
func (s *serviceImpl) publishEvent(ctx context.Context, event string, booking model.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	detachedCtx := context.WithoutCancel(ctx)

	go func() {
		message := kafka.Message{
			Key: event,
			Value: map[string]any{
				"event":   event,
				"booking": booking,
			},
		}

		if err := s.producer.SendMessages(detachedCtx, s.cfg.Kafka.OrderTopic, message); err != nil {
			log.Warn().Err(err).Str("event", event).Str("booking_id", booking.BookingID).Msg("failed to publish order event")
		}
	}()
}
