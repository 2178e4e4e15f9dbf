package core

import (
	"context"

	"gaschecker/internal/explorer"
	"gaschecker/internal/farcaster"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SocialGraph . SocialGraph
type SocialGraph interface {
	UserByUsername(ctx context.Context, username string) (farcaster.User, error)
	UserByFID(ctx context.Context, fid uint64) (farcaster.User, error)
	FIDByAddress(ctx context.Context, address string) (uint64, error)
}

//counterfeiter:generate -o fake -fake-name NameRegistry . NameRegistry
type NameRegistry interface {
	FIDByName(ctx context.Context, name string) (uint64, error)
}

//counterfeiter:generate -o fake -fake-name NameService . NameService
type NameService interface {
	ResolveENS(ctx context.Context, name string) (string, error)
}

//counterfeiter:generate -o fake -fake-name VerificationHub . VerificationHub
type VerificationHub interface {
	VerificationsByFID(ctx context.Context, fid uint64) ([]farcaster.Verification, error)
}

//counterfeiter:generate -o fake -fake-name ActivityCounter . ActivityCounter
type ActivityCounter interface {
	Name() string
	TransactionCount(ctx context.Context, address string) (uint64, error)
}

//counterfeiter:generate -o fake -fake-name TransactionHistory . TransactionHistory
type TransactionHistory interface {
	TransactionList(ctx context.Context, address string) ([]explorer.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name PriceFeed . PriceFeed
type PriceFeed interface {
	ETHPrice(ctx context.Context) (float64, error)
}
