package cmd

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"gaschecker/internal/core"
)

var _ = Describe("check output", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = new(bytes.Buffer)
	})

	When("the check succeeded", func() {
		BeforeEach(func() {
			fid := uint64(3)
			primary := "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
			ethCount := uint64(0)
			baseCount := uint64(12)
			renderGasResult(out, core.GasResult{
				Success:           true,
				Username:          "dwr",
				FID:               &fid,
				PrimaryWallet:     &primary,
				TotalTransactions: 2,
				TotalVolumeETH:    1.5,
				TotalGasETH:       0.015,
				TotalGasUSD:       52.5,
				ETHPrice:          3500,
				Wallets: []core.WalletInfo{
					{Address: primary, EthTxCount: &ethCount, BaseTxCount: &baseCount, IsPrimary: true},
				},
			})
		})

		It("should print the totals and the wallets", func() {
			Expect(out.String()).To(ContainSubstring("Gas check for dwr"))
			Expect(out.String()).To(ContainSubstring("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"))
			Expect(out.String()).To(ContainSubstring("1.500000"))
			Expect(out.String()).To(ContainSubstring("52.50"))
			Expect(strings.ToUpper(out.String())).To(ContainSubstring("BASE TXS"))
		})
	})

	When("the check failed", func() {
		BeforeEach(func() {
			msg := core.ErrMsgWalletNotFound
			renderQuickResult(out, core.QuickResult{Username: "ghost", Error: &msg})
		})

		It("should print the error and no wallet table", func() {
			Expect(out.String()).To(ContainSubstring(core.ErrMsgWalletNotFound))
			Expect(strings.ToUpper(out.String())).NotTo(ContainSubstring("BASE TXS"))
		})
	})

	When("the username is blank", func() {
		It("should refuse to run", func() {
			root := newRootCommand()
			root.SetArgs([]string{"check", "  "})
			root.SetOut(new(bytes.Buffer))
			Expect(root.Execute()).To(MatchError(errBlankUsername))
		})
	})
})
