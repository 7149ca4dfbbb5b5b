package qr

//go:generate go run go.uber.org/mock/mockgen -source=./qr.go -destination=./mocks/qr_mock.go -package=mocks

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	defaultImageSize = 256
)

// Codec turns a booking payload into a scannable PNG image.
type Codec interface {
	Encode(payload string) ([]byte, error)
}

type codecImpl struct {
	size int
}

func New() Codec {
	return &codecImpl{
		size: defaultImageSize,
	}
}

func (c *codecImpl) Encode(payload string) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("qr payload cannot be empty")
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, c.size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr payload: %w", err)
	}

	return png, nil
}
