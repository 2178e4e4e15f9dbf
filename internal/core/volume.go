package core

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	methodIDLength = 10 // "0x" + 4 bytes
	etherDecimals  = 18
)

var feeRate = decimal.New(1, -2)

type Volume struct {
	TotalTransactions int
	TotalVolumeETH    decimal.Decimal
	TotalGasETH       decimal.Decimal
	TotalGasUSD       float64
	ETHPrice          float64
}

// ETHPrice returns the live ether price, or FallbackETHPrice when the feed fails.
func (c *Checker) ETHPrice(ctx context.Context) float64 {
	price, err := c.up.Prices.ETHPrice(ctx)
	if err != nil {
		c.logs.Warnw("eth price lookup failed, using fallback", "fallback", FallbackETHPrice, "error", err)
		return FallbackETHPrice
	}
	return price
}

// ComputeVolume sums the ether sent by wallet through the configured method and derives the 1% fee.
// A failed or empty history yields a zero volume.
func (c *Checker) ComputeVolume(ctx context.Context, wallet string) Volume {
	ctx, span := c.tracer.Start(ctx, "ComputingVolume")
	defer span.End()

	price := c.ETHPrice(ctx)

	txs, err := c.up.History.TransactionList(ctx, wallet)
	if err != nil {
		c.lookupFailed("transaction history unavailable", err, "wallet", wallet)
	}

	volume := Volume{
		TotalVolumeETH: decimal.Zero,
		TotalGasETH:    decimal.Zero,
		ETHPrice:       price,
	}

	for _, tx := range txs {
		if len(tx.Input) < methodIDLength || !strings.EqualFold(tx.Input[:methodIDLength], c.methodID) {
			continue
		}
		volume.TotalTransactions++

		wei, err := decimal.NewFromString(tx.Value)
		if err != nil {
			c.logs.Warnw("skipping unparseable transaction value", "hash", tx.Hash, "value", tx.Value, "error", err)
			continue
		}
		volume.TotalVolumeETH = volume.TotalVolumeETH.Add(wei.Shift(-etherDecimals))
	}

	if volume.TotalTransactions == 0 {
		return volume
	}

	volume.TotalGasETH = volume.TotalVolumeETH.Mul(feeRate)
	volume.TotalGasUSD = roundCents(volume.TotalGasETH.InexactFloat64() * price)

	return volume
}

// roundCents rounds the exact binary value of usd to two decimals, ties to even.
func roundCents(usd float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(usd, 'f', 2, 64), 64)
	if err != nil {
		return usd
	}
	return rounded
}
