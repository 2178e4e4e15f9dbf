package farcaster

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gaschecker/internal/upstream"
)

const DefaultNeynarURL = "https://api.neynar.com"

// Neynar is a client for the Neynar social-graph API.
type Neynar struct {
	baseURL string
	client  *upstream.Client
}

func NewNeynar(baseURL, apiKey string) *Neynar {
	headers := http.Header{}
	headers.Set("x-api-key", apiKey)

	return &Neynar{
		baseURL: baseURL,
		client:  upstream.NewClient("neynar", upstream.LookupTimeout, headers),
	}
}

func (n *Neynar) UserByUsername(ctx context.Context, username string) (User, error) {
	var resp userResponse
	err := n.client.GetJSON(ctx, "user by username", n.baseURL+"/v2/farcaster/user/by_username",
		url.Values{"username": {username}}, &resp)
	if err != nil {
		return User{}, err
	}

	if resp.User == nil {
		return User{}, upstream.NewError(n.client.Service(), "user by username", upstream.ErrNotFound)
	}

	return *resp.User, nil
}

func (n *Neynar) UserByFID(ctx context.Context, fid uint64) (User, error) {
	var resp usersResponse
	err := n.client.GetJSON(ctx, "user bulk", n.baseURL+"/v2/farcaster/user/bulk",
		url.Values{"fids": {strconv.FormatUint(fid, 10)}}, &resp)
	if err != nil {
		return User{}, err
	}

	if len(resp.Users) == 0 {
		return User{}, upstream.NewError(n.client.Service(), "user bulk", upstream.ErrNotFound)
	}

	return resp.Users[0], nil
}

// FIDByAddress returns the fid of the first user linked to address.
func (n *Neynar) FIDByAddress(ctx context.Context, address string) (uint64, error) {
	var resp map[string][]User
	err := n.client.GetJSON(ctx, "user bulk by address", n.baseURL+"/v2/farcaster/user/bulk-by-address/",
		url.Values{"addresses": {address}}, &resp)
	if err != nil {
		return 0, err
	}

	users, ok := resp[strings.ToLower(address)]
	if !ok {
		for key, candidates := range resp {
			if strings.EqualFold(key, address) {
				users = candidates
				break
			}
		}
	}

	if len(users) == 0 || users[0].FID == 0 {
		return 0, upstream.NewError(n.client.Service(), "user bulk by address", upstream.ErrNotFound)
	}

	return users[0].FID, nil
}
