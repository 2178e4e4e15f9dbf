package farcaster

import (
	"context"
	"net/url"

	"gaschecker/internal/upstream"
)

const DefaultFnamesURL = "https://fnames.farcaster.xyz"

// FnameRegistry resolves Farcaster names through the fname registry server.
type FnameRegistry struct {
	baseURL string
	client  *upstream.Client
}

func NewFnameRegistry(baseURL string) *FnameRegistry {
	return &FnameRegistry{
		baseURL: baseURL,
		client:  upstream.NewClient("fnames", upstream.LookupTimeout, nil),
	}
}

// FIDByName returns the fid currently owning name.
func (r *FnameRegistry) FIDByName(ctx context.Context, name string) (uint64, error) {
	var resp transferResponse
	err := r.client.GetJSON(ctx, "current transfer", r.baseURL+"/transfers/current", url.Values{"name": {name}}, &resp)
	if err != nil {
		return 0, err
	}

	if resp.Transfer == nil || resp.Transfer.To == 0 {
		return 0, upstream.NewError(r.client.Service(), "current transfer", upstream.ErrNotFound)
	}

	return resp.Transfer.To, nil
}
