package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"gaschecker/internal/core"
)

var errBlankUsername error = errors.New("username must not be blank")

func newCheckCommand() *cobra.Command {
	var quick bool

	cmd := &cobra.Command{
		Use:   "check <username>",
		Short: "Run one gas check and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := strings.TrimSpace(args[0])
			if username == "" {
				return errBlankUsername
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if quick {
				renderQuickResult(cmd.OutOrStdout(), a.checker.QuickCheck(cmd.Context(), username))
				return nil
			}
			renderGasResult(cmd.OutOrStdout(), a.checker.CheckGas(cmd.Context(), username))
			return nil
		},
	}

	cmd.Flags().BoolVar(&quick, "quick", false, "resolve the primary wallet only")
	return cmd
}

func renderGasResult(out io.Writer, result core.GasResult) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle("Gas check for %s", result.Username)
	t.AppendHeader(table.Row{"Field", "Value"})

	t.AppendRows([]table.Row{
		{"Success", result.Success},
		{"FID", valueOr(result.FID)},
		{"Display name", valueOr(result.DisplayName)},
		{"Primary wallet", valueOr(result.PrimaryWallet)},
		{"Transactions", result.TotalTransactions},
		{"Volume (ETH)", fmt.Sprintf("%.6f", result.TotalVolumeETH)},
		{"Gas (ETH)", fmt.Sprintf("%.6f", result.TotalGasETH)},
		{"Gas (USD)", fmt.Sprintf("%.2f", result.TotalGasUSD)},
		{"ETH price", fmt.Sprintf("%.2f", result.ETHPrice)},
	})
	if result.Error != nil {
		t.AppendRow(table.Row{"Error", *result.Error})
	}
	t.Render()

	renderWallets(out, result.Wallets)
}

func renderQuickResult(out io.Writer, result core.QuickResult) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle("Wallet check for %s", result.Username)
	t.AppendHeader(table.Row{"Field", "Value"})

	t.AppendRows([]table.Row{
		{"Success", result.Success},
		{"FID", valueOr(result.FID)},
		{"Display name", valueOr(result.DisplayName)},
		{"Primary wallet", valueOr(result.PrimaryWallet)},
	})
	if result.Error != nil {
		t.AppendRow(table.Row{"Error", *result.Error})
	}
	t.Render()

	renderWallets(out, result.Wallets)
}

func renderWallets(out io.Writer, wallets []core.WalletInfo) {
	if len(wallets) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Wallet", "Ethereum txs", "Base txs", "Primary"})
	for _, w := range wallets {
		primary := ""
		if w.IsPrimary {
			primary = "*"
		}
		t.AppendRow(table.Row{w.Address, valueOr(w.EthTxCount), valueOr(w.BaseTxCount), primary})
	}
	t.Render()
}

func valueOr[T any](v *T) any {
	if v == nil {
		return "-"
	}
	return *v
}
