package helper

import (
	"context"
	"fmt"

	mongoInfra "canteen/infras/mongo"
	orderModel "canteen/internal/domains/order/model"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes the query paths rely on. CreateIndexes is
// idempotent, so this runs on every startup.
func EnsureIndexes(ctx context.Context, conn *mongoInfra.Connection) error {
	ctx, cancel := conn.WithWriteTimeout(ctx)
	defer cancel()

	bookings := conn.Database.Collection(orderModel.CollectionName)
	mirror := conn.Database.Collection(orderModel.MirrorCollectionName)

	_, err := bookings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: orderModel.FieldUsername, Value: 1},
				{Key: orderModel.FieldCreatedAt, Value: -1},
			},
		},
		{
			Keys: bson.D{{Key: orderModel.FieldStatus, Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("error creating booking indexes: %w", err)
	}

	_, err = mirror.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: orderModel.FieldUsername, Value: 1},
			{Key: "booking." + orderModel.FieldCreatedAt, Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("error creating booking mirror indexes: %w", err)
	}

	log.Info().Msg("Database indexes ensured successfully")

	return nil
}
