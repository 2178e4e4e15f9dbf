package core

const (
	// FallbackETHPrice is used whenever the price feed cannot answer.
	FallbackETHPrice = 3500.0

	DefaultMethodID = "0x1fff991f"

	ENSSuffix = ".eth"

	ErrMsgFIDNotFound    = "User not found - Cannot find FID for this username"
	ErrMsgWalletNotFound = "No verified wallet found for this user"
)

// State is the terminal state of one pipeline run.
type State string

const (
	StateSuccess        State = "success"
	StateFIDNotFound    State = "fid_not_found"
	StateWalletNotFound State = "wallet_not_found"
)

type Profile struct {
	FID         uint64
	DisplayName *string
	PfpURL      *string
}

type WalletInfo struct {
	Address     string  `json:"address"`
	EthTxCount  *uint64 `json:"eth_tx_count"`
	BaseTxCount *uint64 `json:"base_tx_count"`
	IsPrimary   bool    `json:"is_primary"`
}

type GasResult struct {
	State             State        `json:"-"`
	Success           bool         `json:"success"`
	Username          string       `json:"username"`
	FID               *uint64      `json:"fid"`
	DisplayName       *string      `json:"display_name"`
	PfpURL            *string      `json:"pfp_url"`
	PrimaryWallet     *string      `json:"primary_wallet"`
	Wallets           []WalletInfo `json:"wallets,omitempty"`
	TotalTransactions int          `json:"total_transactions"`
	TotalVolumeETH    float64      `json:"total_volume_eth"`
	TotalGasETH       float64      `json:"total_gas_eth"`
	TotalGasUSD       float64      `json:"total_gas_usd"`
	ETHPrice          float64      `json:"eth_price"`
	Error             *string      `json:"error"`
}

// QuickResult is the identity and wallet part of a GasResult, without any volume work.
type QuickResult struct {
	State         State        `json:"-"`
	Success       bool         `json:"success"`
	Username      string       `json:"username"`
	FID           *uint64      `json:"fid"`
	DisplayName   *string      `json:"display_name"`
	PfpURL        *string      `json:"pfp_url"`
	PrimaryWallet *string      `json:"primary_wallet"`
	Wallets       []WalletInfo `json:"wallets,omitempty"`
	Error         *string      `json:"error"`
}
