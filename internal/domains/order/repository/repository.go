package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/order_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"canteen/helper"
	mongoInfra "canteen/infras/mongo"
	"canteen/infras/otel"
	"canteen/internal/domains/order/model"
	"canteen/shared/constant"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("booking not found")

type Order interface {
	Insert(ctx context.Context, booking model.Booking) error
	UpsertMirror(ctx context.Context, booking model.Booking) error
	Get(ctx context.Context, bookingID string) (model.Booking, error)
	MarkCollected(ctx context.Context, bookingID string, at time.Time) error
	MarkMirrorCollected(ctx context.Context, username, bookingID string, at time.Time) error
	GetByOwner(ctx context.Context, username string, limit, offset int64) ([]model.Booking, error)
	CountByOwner(ctx context.Context, username string) (int, error)
	ExecuteTransaction(ctx context.Context, fn mongoInfra.TransactionFunc) error
}

// mirrorDoc is the per-user copy of a booking. Its id is derived from the
// owner and the booking id so that re-running the mirror write after a
// partial failure converges instead of duplicating.
type mirrorDoc struct {
	ID       string        `bson:"_id"`
	Username string        `bson:"username"`
	Booking  model.Booking `bson:"booking"`
}

func mirrorID(username, bookingID string) string {
	return username + "/" + bookingID
}

type repositoryImpl struct {
	db         *mongoInfra.Connection
	collection *mongo.Collection
	mirror     *mongo.Collection
	tx         mongoInfra.TransactionManager
	otel       otel.Otel
}

func New(db *mongoInfra.Connection, tx mongoInfra.TransactionManager, otel otel.Otel) Order {
	if err := helper.EnsureIndexes(context.Background(), db); err != nil {
		log.Warn().Err(err).Msg("failed to ensure booking indexes")
	}

	return &repositoryImpl{
		db:         db,
		collection: db.Database.Collection(model.CollectionName),
		mirror:     db.Database.Collection(model.MirrorCollectionName),
		tx:         tx,
		otel:       otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".order.Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	ctx, cancel := r.db.WithWriteTimeout(ctx)
	defer cancel()

	_, err = r.collection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

func (r *repositoryImpl) UpsertMirror(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".order.UpsertMirror")
	defer scope.End()
	defer scope.TraceIfError(err)

	ctx, cancel := r.db.WithWriteTimeout(ctx)
	defer cancel()

	doc := mirrorDoc{
		ID:       mirrorID(booking.Username, booking.BookingID),
		Username: booking.Username,
		Booking:  booking,
	}

	filter := bson.M{"_id": doc.ID}
	update := bson.M{"$set": doc}

	_, err = r.mirror.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert booking mirror: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Get(ctx context.Context, bookingID string) (booking model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".order.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	ctx, cancel := r.db.WithReadTimeout(ctx)
	defer cancel()

	err = r.collection.FindOne(ctx, bson.M{model.FieldBookingID: bookingID}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return booking, ErrNotFound
		}

		return booking, fmt.Errorf("failed to find booking: %w", err)
	}

	return booking, nil
}

func (r *repositoryImpl) MarkCollected(ctx context.Context, bookingID string, at time.Time) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".order.MarkCollected")
	defer scope.End()
	defer scope.TraceIfError(err)

	ctx, cancel := r.db.WithWriteTimeout(ctx)
	defer cancel()

	// The status filter makes collection monotone: a booking already
	// collected by a concurrent verifier matches nothing here.
	filter := bson.M{
		model.FieldBookingID: bookingID,
		model.FieldStatus:    model.StatusConfirmed,
	}
	update := bson.M{"$set": bson.M{
		model.FieldStatus:      model.StatusCollected,
		model.FieldCollectedAt: at,
		model.FieldUpdatedAt:   at,
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark booking collected: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *repositoryImpl) MarkMirrorCollected(ctx context.Context, username, bookingID string, at time.Time) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".order.MarkMirrorCollected")
	defer scope.End()
	defer scope.TraceIfError(err)

	ctx, cancel := r.db.WithWriteTimeout(ctx)
	defer cancel()

	filter := bson.M{"_id": mirrorID(username, bookingID)}
	update := bson.M{"$set": bson.M{
		"booking." + model.FieldStatus:      model.StatusCollected,
		"booking." + model.FieldCollectedAt: at,
		"booking." + model.FieldUpdatedAt:   at,
	}}

	result, err := r.mirror.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark booking mirror collected: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// GetByOwner reads from the per-user mirror, newest first.
func (r *repositoryImpl) GetByOwner(ctx context.Context, username string, limit, offset int64) (bookings []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".order.GetByOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	ctx, cancel := r.db.WithReadTimeout(ctx)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "booking." + model.FieldCreatedAt, Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.mirror.Find(ctx, bson.M{model.FieldUsername: username}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	docs := make([]mirrorDoc, 0)
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	bookings = make([]model.Booking, 0, len(docs))
	for _, doc := range docs {
		bookings = append(bookings, doc.Booking)
	}

	return bookings, nil
}

func (r *repositoryImpl) CountByOwner(ctx context.Context, username string) (total int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".order.CountByOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	ctx, cancel := r.db.WithReadTimeout(ctx)
	defer cancel()

	count, err := r.mirror.CountDocuments(ctx, bson.M{model.FieldUsername: username})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return int(count), nil
}

func (r *repositoryImpl) ExecuteTransaction(ctx context.Context, fn mongoInfra.TransactionFunc) error {
	return r.tx.ExecuteTransaction(ctx, fn)
}
