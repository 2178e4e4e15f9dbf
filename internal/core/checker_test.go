package core_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"gaschecker/internal/core"
	"gaschecker/internal/core/fake"
	"gaschecker/internal/explorer"
	"gaschecker/internal/farcaster"
	"gaschecker/internal/upstream"
)

var _ = Describe("Checker", func() {
	var (
		fakeGraph     *fake.SocialGraph
		fakeRegistry  *fake.NameRegistry
		fakeENS       *fake.NameService
		fakeHub       *fake.VerificationHub
		fakePrimary   *fake.ActivityCounter
		fakeSecondary *fake.ActivityCounter
		fakeHistory   *fake.TransactionHistory
		fakePrices    *fake.PriceFeed
		ctx           context.Context

		checker *core.Checker

		wallet   string
		notFound error
		fakeErr  error
	)

	BeforeEach(func() {
		fakeGraph = new(fake.SocialGraph)
		fakeRegistry = new(fake.NameRegistry)
		fakeENS = new(fake.NameService)
		fakeHub = new(fake.VerificationHub)
		fakePrimary = new(fake.ActivityCounter)
		fakeSecondary = new(fake.ActivityCounter)
		fakeHistory = new(fake.TransactionHistory)
		fakePrices = new(fake.PriceFeed)
		ctx = context.Background()

		wallet = common.HexToAddress("0x00000000000000000000000000000000000000aa").Hex()
		notFound = fmt.Errorf("lookup: %w", upstream.ErrNotFound)
		fakeErr = errors.New("fake error")

		fakeGraph.UserByUsernameReturns(farcaster.User{
			FID:         3,
			Username:    "dwr",
			DisplayName: "Dan",
			PfpURL:      "https://example.com/dan.png",
		}, nil)
		fakeHub.VerificationsByFIDReturns([]farcaster.Verification{
			{Protocol: farcaster.ProtocolEthereum, Address: wallet},
		}, nil)
		fakeHistory.TransactionListReturns([]explorer.Transaction{
			{Input: "0x1fff991f00", Value: "1000000000000000000"},
			{Input: "0xa9059cbb00", Value: "5000000000000000000"},
		}, nil)
		fakePrices.ETHPriceReturns(3000, nil)

		checker = core.NewChecker(zap.NewNop().Sugar(), core.DefaultMethodID, core.Upstreams{
			SocialGraph:    fakeGraph,
			NameRegistry:   fakeRegistry,
			NameService:    fakeENS,
			Hub:            fakeHub,
			PrimaryChain:   fakePrimary,
			SecondaryChain: fakeSecondary,
			History:        fakeHistory,
			Prices:         fakePrices,
		})
	})

	Describe("CheckGas", func() {
		var (
			username string
			result   core.GasResult
		)

		BeforeEach(func() {
			username = "  @DWR "
		})

		JustBeforeEach(func() {
			result = checker.CheckGas(ctx, username)
		})

		When("every upstream answers", func() {
			It("should return the full result", func() {
				Expect(result.State).To(Equal(core.StateSuccess))
				Expect(result.Success).To(BeTrue())
				Expect(result.Username).To(Equal("dwr"))
				Expect(*result.FID).To(Equal(uint64(3)))
				Expect(*result.DisplayName).To(Equal("Dan"))
				Expect(*result.PfpURL).To(Equal("https://example.com/dan.png"))
				Expect(*result.PrimaryWallet).To(Equal(wallet))
				Expect(result.TotalTransactions).To(Equal(1))
				Expect(result.TotalVolumeETH).To(Equal(1.0))
				Expect(result.TotalGasETH).To(Equal(0.01))
				Expect(result.TotalGasUSD).To(Equal(30.0))
				Expect(result.ETHPrice).To(Equal(3000.0))
				Expect(result.Error).To(BeNil())
			})

			It("should look the user up by the normalized name", func() {
				_, name := fakeGraph.UserByUsernameArgsForCall(0)
				Expect(name).To(Equal("dwr"))
				Expect(fakeRegistry.FIDByNameCallCount()).To(Equal(0))
				Expect(fakePrices.ETHPriceCallCount()).To(Equal(1))
			})
		})

		When("the username differs only in case and prefix", func() {
			It("should resolve identically", func() {
				other := checker.CheckGas(ctx, "dwr")
				Expect(other).To(Equal(result))
			})
		})

		When("the direct lookup misses", func() {
			BeforeEach(func() {
				fakeGraph.UserByUsernameReturns(farcaster.User{}, notFound)
				fakeRegistry.FIDByNameReturns(3, nil)
				fakeGraph.UserByFIDReturns(farcaster.User{FID: 3, DisplayName: "Dan"}, nil)
			})

			It("should fall back to the fname registry", func() {
				Expect(result.Success).To(BeTrue())
				Expect(*result.FID).To(Equal(uint64(3)))
				Expect(*result.DisplayName).To(Equal("Dan"))
				Expect(result.PfpURL).To(BeNil())
				_, fid := fakeGraph.UserByFIDArgsForCall(0)
				Expect(fid).To(Equal(uint64(3)))
			})
		})

		When("the profile lookup by fid fails", func() {
			BeforeEach(func() {
				fakeGraph.UserByUsernameReturns(farcaster.User{}, fakeErr)
				fakeRegistry.FIDByNameReturns(3, nil)
				fakeGraph.UserByFIDReturns(farcaster.User{}, fakeErr)
			})

			It("should continue without profile fields", func() {
				Expect(result.Success).To(BeTrue())
				Expect(*result.FID).To(Equal(uint64(3)))
				Expect(result.DisplayName).To(BeNil())
				Expect(result.PfpURL).To(BeNil())
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeGraph.UserByUsernameReturns(farcaster.User{}, notFound)
				fakeRegistry.FIDByNameReturns(0, notFound)
			})

			It("should report fid_not_found with zero numbers", func() {
				Expect(result.State).To(Equal(core.StateFIDNotFound))
				Expect(result.Success).To(BeFalse())
				Expect(*result.Error).To(Equal(core.ErrMsgFIDNotFound))
				Expect(result.FID).To(BeNil())
				Expect(result.PrimaryWallet).To(BeNil())
				Expect(result.TotalTransactions).To(Equal(0))
				Expect(result.TotalVolumeETH).To(Equal(0.0))
				Expect(result.TotalGasETH).To(Equal(0.0))
				Expect(result.TotalGasUSD).To(Equal(0.0))
				Expect(result.ETHPrice).To(Equal(3000.0))
				Expect(fakeHub.VerificationsByFIDCallCount()).To(Equal(0))
				Expect(fakeHistory.TransactionListCallCount()).To(Equal(0))
			})
		})

		When("the user has no verified wallet", func() {
			BeforeEach(func() {
				fakeHub.VerificationsByFIDReturns([]farcaster.Verification{}, nil)
				fakePrices.ETHPriceReturns(0, fakeErr)
			})

			It("should report wallet_not_found with the fallback price", func() {
				Expect(result.State).To(Equal(core.StateWalletNotFound))
				Expect(result.Success).To(BeFalse())
				Expect(*result.Error).To(Equal(core.ErrMsgWalletNotFound))
				Expect(*result.FID).To(Equal(uint64(3)))
				Expect(result.PrimaryWallet).To(BeNil())
				Expect(result.TotalTransactions).To(Equal(0))
				Expect(result.TotalGasUSD).To(Equal(0.0))
				Expect(result.ETHPrice).To(Equal(core.FallbackETHPrice))
				Expect(fakeHistory.TransactionListCallCount()).To(Equal(0))
			})
		})

		When("the price feed is down", func() {
			BeforeEach(func() {
				fakePrices.ETHPriceReturns(0, fakeErr)
			})

			It("should compute the USD fee at the fallback price", func() {
				Expect(result.Success).To(BeTrue())
				Expect(result.ETHPrice).To(Equal(3500.0))
				Expect(result.TotalGasUSD).To(Equal(35.0))
			})
		})
	})

	Describe("QuickCheck", func() {
		var result core.QuickResult

		JustBeforeEach(func() {
			result = checker.QuickCheck(ctx, "dwr")
		})

		When("the wallet resolves", func() {
			It("should not touch the volume upstreams", func() {
				Expect(result.Success).To(BeTrue())
				Expect(*result.PrimaryWallet).To(Equal(wallet))
				Expect(result.Wallets).To(HaveLen(1))
				Expect(fakeHistory.TransactionListCallCount()).To(Equal(0))
				Expect(fakePrices.ETHPriceCallCount()).To(Equal(0))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeGraph.UserByUsernameReturns(farcaster.User{}, notFound)
				fakeRegistry.FIDByNameReturns(0, notFound)
			})

			It("should report the failure", func() {
				Expect(result.Success).To(BeFalse())
				Expect(result.State).To(Equal(core.StateFIDNotFound))
				Expect(*result.Error).To(Equal(core.ErrMsgFIDNotFound))
			})
		})
	})
})
