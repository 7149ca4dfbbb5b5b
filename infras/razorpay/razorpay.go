package razorpay

//go:generate go run go.uber.org/mock/mockgen -source=./razorpay.go -destination=./mocks/razorpay_mock.go -package=mocks

import (
	"context"
	"fmt"

	"canteen/config"
	"canteen/infras/otel"
	"canteen/shared/constant"

	razorpaySDK "github.com/razorpay/razorpay-go"
	"github.com/rs/zerolog/log"
)

const (
	statusCaptured = "captured"
)

// Gateway confirms that a payment reference has been captured before a
// booking is persisted. Any status other than captured is a hard rejection,
// no retry.
type Gateway interface {
	ConfirmCaptured(ctx context.Context, paymentID string) (bool, error)
}

type gatewayImpl struct {
	client *razorpaySDK.Client
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Gateway {
	client := razorpaySDK.NewClient(config.External.Razorpay.KeyID, config.External.Razorpay.KeySecret)

	return &gatewayImpl{
		client: client,
		otel:   otel,
	}
}

func (g *gatewayImpl) ConfirmCaptured(ctx context.Context, paymentID string) (captured bool, err error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ConfirmCaptured")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("payment.id", paymentID)

	payment, err := g.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		log.Error().Err(err).Str("payment_id", paymentID).Msg("failed to fetch payment from gateway")

		return false, fmt.Errorf("failed to fetch payment: %w", err)
	}

	status, _ := payment["status"].(string)
	scope.SetAttribute("payment.status", status)

	return status == statusCaptured, nil
}
