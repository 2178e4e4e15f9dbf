package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gaschecker/internal/upstream"
)

const (
	DefaultURL      = "https://api.etherscan.io/v2/api"
	DefaultChainID  = 8453
	DefaultPageSize = 10000

	noTransactionsMessage = "No transactions found"
)

// ErrNoTransactions is returned when the explorer reports an empty history.
var ErrNoTransactions error = fmt.Errorf("%s: %w", noTransactionsMessage, upstream.ErrNotFound)

type Config struct {
	URL      string
	APIKey   string
	ChainID  uint64
	PageSize int
}

// Etherscan reads account history from an Etherscan v2 multichain endpoint.
type Etherscan struct {
	cfg    Config
	client *upstream.Client
}

func NewEtherscan(cfg Config) *Etherscan {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.ChainID == 0 {
		cfg.ChainID = DefaultChainID
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}

	return &Etherscan{
		cfg:    cfg,
		client: upstream.NewClient("explorer", upstream.HistoryTimeout, nil),
	}
}

// TransactionList returns the normal transactions of address in ascending order.
// Only the first page of PageSize records is read.
func (e *Etherscan) TransactionList(ctx context.Context, address string) ([]Transaction, error) {
	query := url.Values{
		"chainid":    {strconv.FormatUint(e.cfg.ChainID, 10)},
		"module":     {"account"},
		"action":     {"txlist"},
		"address":    {address},
		"startblock": {"0"},
		"endblock":   {"99999999"},
		"page":       {"1"},
		"offset":     {strconv.Itoa(e.cfg.PageSize)},
		"sort":       {"asc"},
		"apikey":     {e.cfg.APIKey},
	}

	var resp apiResponse
	if err := e.client.GetJSON(ctx, "txlist", e.cfg.URL, query, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "1" {
		if strings.Contains(resp.Message, noTransactionsMessage) {
			return nil, upstream.NewError(e.client.Service(), "txlist", ErrNoTransactions)
		}
		return nil, upstream.NewError(e.client.Service(), "txlist",
			fmt.Errorf("explorer status %q: %s: %s", resp.Status, resp.Message, string(resp.Result)))
	}

	var txs []Transaction
	if err := json.Unmarshal(resp.Result, &txs); err != nil {
		return nil, upstream.NewError(e.client.Service(), "txlist", fmt.Errorf("decode result: %w", err))
	}

	return txs, nil
}
