package handler

import (
	"context"

	"gaschecker/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name GasService . GasService
type GasService interface {
	CheckGas(ctx context.Context, username string) core.GasResult
	QuickCheck(ctx context.Context, username string) core.QuickResult
	ETHPrice(ctx context.Context) float64
}
