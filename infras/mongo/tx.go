package mongo

//go:generate go run go.uber.org/mock/mockgen -source=./tx.go -destination=./mocks/tx_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"canteen/shared/failure"

	"go.mongodb.org/mongo-driver/mongo"
)

type TransactionFunc func(ctx mongo.SessionContext) error

// TransactionManager runs a function inside a mongo session transaction so
// that multi-document writes commit or abort together.
type TransactionManager interface {
	ExecuteTransaction(ctx context.Context, fn TransactionFunc) error
}

type transactionManagerImpl struct {
	client *mongo.Client
}

func NewTransactionManager(conn *Connection) TransactionManager {
	return &transactionManagerImpl{
		client: conn.Client,
	}
}

func (m *transactionManagerImpl) ExecuteTransaction(ctx context.Context, fn TransactionFunc) error {
	session, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, fn(sessCtx)
	})

	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return err
		}

		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
