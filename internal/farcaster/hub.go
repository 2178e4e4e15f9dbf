package farcaster

import (
	"context"
	"net/url"
	"strconv"

	"gaschecker/internal/upstream"
)

const DefaultHubURL = "https://hub.pinata.cloud"

// Hub reads verification messages from a Farcaster hub HTTP API.
type Hub struct {
	baseURL string
	client  *upstream.Client
}

func NewHub(baseURL string) *Hub {
	return &Hub{
		baseURL: baseURL,
		client:  upstream.NewClient("hub", upstream.LookupTimeout, nil),
	}
}

// VerificationsByFID returns the address bodies of every verification message of fid,
// in hub order. Messages without an address body are returned with empty fields.
func (h *Hub) VerificationsByFID(ctx context.Context, fid uint64) ([]Verification, error) {
	var resp verificationsResponse
	err := h.client.GetJSON(ctx, "verifications by fid", h.baseURL+"/v1/verificationsByFid",
		url.Values{"fid": {strconv.FormatUint(fid, 10)}}, &resp)
	if err != nil {
		return nil, err
	}

	verifications := make([]Verification, 0, len(resp.Messages))
	for _, msg := range resp.Messages {
		var v Verification
		if msg.Data != nil && msg.Data.VerificationAddAddressBody != nil {
			v.Protocol = msg.Data.VerificationAddAddressBody.Protocol
			v.Address = msg.Data.VerificationAddAddressBody.Address
		}
		verifications = append(verifications, v)
	}

	return verifications, nil
}
