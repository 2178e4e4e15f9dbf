package core_test

import (
	"context"
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"gaschecker/internal/core"
	"gaschecker/internal/core/fake"
	"gaschecker/internal/explorer"
	"gaschecker/internal/upstream"
)

var _ = Describe("Volume", func() {
	var (
		fakeHistory *fake.TransactionHistory
		fakePrices  *fake.PriceFeed
		ctx         context.Context

		checker *core.Checker
		wallet  string
		volume  core.Volume
		fakeErr error
	)

	BeforeEach(func() {
		fakeHistory = new(fake.TransactionHistory)
		fakePrices = new(fake.PriceFeed)
		fakePrices.ETHPriceReturns(2000, nil)
		ctx = context.Background()
		wallet = "0x00000000000000000000000000000000000000Aa"
		fakeErr = errors.New("fake error")

		checker = core.NewChecker(zap.NewNop().Sugar(), core.DefaultMethodID, core.Upstreams{
			History: fakeHistory,
			Prices:  fakePrices,
		})
	})

	Describe("ETHPrice", func() {
		When("the feed answers", func() {
			It("should return the live price", func() {
				Expect(checker.ETHPrice(ctx)).To(Equal(2000.0))
			})
		})

		When("the feed fails", func() {
			BeforeEach(func() {
				fakePrices.ETHPriceReturns(0, fakeErr)
			})

			It("should fall back", func() {
				Expect(checker.ETHPrice(ctx)).To(Equal(core.FallbackETHPrice))
			})
		})
	})

	Describe("ComputeVolume", func() {
		JustBeforeEach(func() {
			volume = checker.ComputeVolume(ctx, wallet)
		})

		When("only some transactions call the method", func() {
			BeforeEach(func() {
				fakeHistory.TransactionListReturns([]explorer.Transaction{
					{Hash: "0x01", Input: "0x1fff991fAB000000", Value: "1000000000000000000"},
					{Hash: "0x02", Input: "0xdeadbeef00000000", Value: "999000000000000000000"},
				}, nil)
			})

			It("should sum the matching ones", func() {
				Expect(volume.TotalTransactions).To(Equal(1))
				Expect(volume.TotalVolumeETH.InexactFloat64()).To(Equal(1.0))
				Expect(volume.TotalGasETH.InexactFloat64()).To(Equal(0.01))
				Expect(volume.TotalGasUSD).To(Equal(20.0))
				Expect(volume.ETHPrice).To(Equal(2000.0))

				_, address := fakeHistory.TransactionListArgsForCall(0)
				Expect(address).To(Equal(wallet))
			})
		})

		When("the method id is written in upper case", func() {
			BeforeEach(func() {
				fakeHistory.TransactionListReturns([]explorer.Transaction{
					{Input: "0x1FFF991F", Value: "500000000000000000"},
					{Input: "0x1fff99", Value: "1000000000000000000"},
					{Input: "", Value: "1000000000000000000"},
				}, nil)
			})

			It("should still match and skip short inputs", func() {
				Expect(volume.TotalTransactions).To(Equal(1))
				Expect(volume.TotalVolumeETH.String()).To(Equal("0.5"))
				Expect(volume.TotalGasETH.String()).To(Equal("0.005"))
				Expect(volume.TotalGasUSD).To(Equal(10.0))
			})
		})

		When("a matching value cannot be parsed", func() {
			BeforeEach(func() {
				fakeHistory.TransactionListReturns([]explorer.Transaction{
					{Input: "0x1fff991f", Value: "lots"},
					{Input: "0x1fff991f", Value: "2000000000000000000"},
				}, nil)
			})

			It("should count it without adding volume", func() {
				Expect(volume.TotalTransactions).To(Equal(2))
				Expect(volume.TotalVolumeETH.String()).To(Equal("2"))
			})
		})

		When("the fee has more than two decimals in USD", func() {
			BeforeEach(func() {
				fakePrices.ETHPriceReturns(3333.33, nil)
				fakeHistory.TransactionListReturns([]explorer.Transaction{
					{Input: "0x1fff991f", Value: "123456789000000000"},
				}, nil)
			})

			It("should round to cents", func() {
				Expect(volume.TotalGasETH.String()).To(Equal("0.00123456789"))
				Expect(volume.TotalGasUSD).To(Equal(4.12))
			})
		})

		DescribeTable("rounding the USD fee to cents",
			func(wei string, ethPrice float64, expectedUSD float64) {
				fakePrices.ETHPriceReturns(ethPrice, nil)
				fakeHistory.TransactionListReturns([]explorer.Transaction{
					{Input: "0x1fff991f", Value: wei},
				}, nil)

				Expect(checker.ComputeVolume(ctx, wallet).TotalGasUSD).To(Equal(expectedUSD))
			},
			Entry("exact tie rounds to the even cent", "12500000000000000000", 1.0, 0.12),
			Entry("tie reached through the price", "5000000000000000", 2500.0, 0.12),
			Entry("binary value just below the tie", "267500000000000000000", 1.0, 2.67),
			Entry("binary value just below a whole cent step", "100500000000000000000", 1.0, 1.0),
			Entry("ordinary value", "123456789000000000", 3333.33, 4.12),
		)

		When("the price feed is down", func() {
			BeforeEach(func() {
				fakePrices.ETHPriceReturns(0, fakeErr)
				fakeHistory.TransactionListReturns([]explorer.Transaction{
					{Input: "0x1fff991f", Value: "1000000000000000000"},
				}, nil)
			})

			It("should price the fee at the fallback", func() {
				Expect(volume.ETHPrice).To(Equal(3500.0))
				Expect(volume.TotalGasUSD).To(Equal(35.0))
			})
		})

		When("the wallet has no history", func() {
			BeforeEach(func() {
				fakeHistory.TransactionListReturns(nil, fmt.Errorf("txlist: %w", upstream.ErrNotFound))
			})

			It("should return a zero volume with the price", func() {
				Expect(volume.TotalTransactions).To(Equal(0))
				Expect(volume.TotalVolumeETH.IsZero()).To(BeTrue())
				Expect(volume.TotalGasETH.IsZero()).To(BeTrue())
				Expect(volume.TotalGasUSD).To(Equal(0.0))
				Expect(volume.ETHPrice).To(Equal(2000.0))
			})
		})

		When("the history fails", func() {
			BeforeEach(func() {
				fakeHistory.TransactionListReturns(nil, fakeErr)
			})

			It("should return a zero volume", func() {
				Expect(volume.TotalTransactions).To(Equal(0))
				Expect(volume.TotalGasUSD).To(Equal(0.0))
			})
		})

		When("it runs twice over the same history", func() {
			BeforeEach(func() {
				fakeHistory.TransactionListReturns([]explorer.Transaction{
					{Input: "0x1fff991f", Value: "100000000000000000"},
					{Input: "0x1fff991f", Value: "200000000000000000"},
					{Input: "0x1fff991f", Value: "300000000000000001"},
				}, nil)
			})

			It("should produce identical numbers", func() {
				again := checker.ComputeVolume(ctx, wallet)
				Expect(again.TotalVolumeETH.Equal(volume.TotalVolumeETH)).To(BeTrue())
				Expect(again.TotalGasETH.Equal(volume.TotalGasETH)).To(BeTrue())
				Expect(again.TotalGasUSD).To(Equal(volume.TotalGasUSD))
				Expect(volume.TotalVolumeETH.String()).To(Equal("0.600000000000000001"))
			})
		})
	})
})
