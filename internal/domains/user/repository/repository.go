package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/user_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	mongoInfra "canteen/infras/mongo"
	"canteen/infras/otel"
	"canteen/internal/domains/user/model"
	"canteen/shared/constant"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("username already registered")
)

type User interface {
	Insert(ctx context.Context, user model.User) error
	Get(ctx context.Context, username string) (model.User, error)
	Exist(ctx context.Context, username string) (bool, error)
	UpdateLastLogin(ctx context.Context, username string, at time.Time) error
}

type repositoryImpl struct {
	db         *mongoInfra.Connection
	collection *mongo.Collection
	otel       otel.Otel
}

func New(db *mongoInfra.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		db:         db,
		collection: db.Database.Collection(model.CollectionName),
		otel:       otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, user model.User) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	ctx, cancel := r.db.WithWriteTimeout(ctx)
	defer cancel()

	_, err = r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}

		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Get(ctx context.Context, username string) (user model.User, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	ctx, cancel := r.db.WithReadTimeout(ctx)
	defer cancel()

	err = r.collection.FindOne(ctx, bson.M{model.FieldUsername: username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user, ErrNotFound
		}

		return user, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

func (r *repositoryImpl) Exist(ctx context.Context, username string) (exists bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.Exist")
	defer scope.End()
	defer scope.TraceIfError(err)

	ctx, cancel := r.db.WithReadTimeout(ctx)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{model.FieldUsername: username})
	if err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}

	return count > 0, nil
}

func (r *repositoryImpl) UpdateLastLogin(ctx context.Context, username string, at time.Time) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.UpdateLastLogin")
	defer scope.End()
	defer scope.TraceIfError(err)

	ctx, cancel := r.db.WithWriteTimeout(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{model.FieldLastLogin: at}}

	result, err := r.collection.UpdateOne(ctx, bson.M{model.FieldUsername: username}, update)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
