package ethereum

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"gaschecker/internal/upstream"
)

// maxOffchainLookups bounds how many gateway round trips a single call may take.
const maxOffchainLookups = 4

var ErrTooManyLookups error = errors.New("too many offchain lookups")

type gatewayRequest struct {
	Data   string `json:"data"`
	Sender string `json:"sender"`
}

type gatewayResponse struct {
	Data string `json:"data"`
}

// fetchOffchain asks the lookup's gateways in order for the answer to its call data.
// A 4xx answer ends the search; other failures move on to the next url.
func (s *ChainService) fetchOffchain(ctx context.Context, lookup offchainLookup) ([]byte, error) {
	sender := strings.ToLower(lookup.Sender.Hex())
	data := hexutil.Encode(lookup.CallData)

	lastErr := errors.New("no gateway urls")
	for _, template := range lookup.URLs {
		var resp gatewayResponse

		endpoint := strings.ReplaceAll(template, "{sender}", sender)
		var err error
		if strings.Contains(endpoint, "{data}") {
			err = s.gateway.GetJSON(ctx, "ccip read", strings.ReplaceAll(endpoint, "{data}", data), nil, &resp)
		} else {
			err = s.gateway.PostJSON(ctx, "ccip read", endpoint, gatewayRequest{Data: data, Sender: sender}, &resp)
		}

		if err == nil {
			answer, decodeErr := hexutil.Decode(resp.Data)
			if decodeErr != nil {
				return nil, upstream.NewError(s.gateway.Service(), "ccip read", fmt.Errorf("decode gateway data: %w", decodeErr))
			}
			return answer, nil
		}

		lastErr = err
		var upErr *upstream.Error
		if errors.As(err, &upErr) && upErr.StatusCode >= http.StatusBadRequest && upErr.StatusCode < http.StatusInternalServerError {
			break
		}
	}

	return nil, fmt.Errorf("offchain lookup: %w", lastErr)
}
