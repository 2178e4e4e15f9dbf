package price

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"gaschecker/internal/upstream"
)

const DefaultCoinGeckoURL = "https://api.coingecko.com"

var (
	ErrMissingUSDPrice = errors.New("missing USD price in CoinGecko response")
)

// CoinGecko fetches spot prices from the CoinGecko simple price API.
type CoinGecko struct {
	baseURL string
	client  *upstream.Client
}

func NewCoinGecko(baseURL string) *CoinGecko {
	return &CoinGecko{
		baseURL: baseURL,
		client:  upstream.NewClient("coingecko", upstream.LookupTimeout, nil),
	}
}

// ETHPrice returns the current ether price in USD.
func (c *CoinGecko) ETHPrice(ctx context.Context) (float64, error) {
	var resp map[string]map[string]float64
	err := c.client.GetJSON(ctx, "simple price", c.baseURL+"/api/v3/simple/price",
		url.Values{"ids": {"ethereum"}, "vs_currencies": {"usd"}}, &resp)
	if err != nil {
		return 0, err
	}

	usd, ok := resp["ethereum"]["usd"]
	if !ok {
		return 0, upstream.NewError(c.client.Service(), "simple price", ErrMissingUSDPrice)
	}

	if usd <= 0 {
		return 0, upstream.NewError(c.client.Service(), "simple price",
			fmt.Errorf("%w: USD price must be positive", ErrMissingUSDPrice))
	}

	return usd, nil
}
