package core

import (
	"context"
	"strings"
)

// NormalizeUsername trims, lowercases and strips one leading "@".
func NormalizeUsername(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	return strings.TrimPrefix(name, "@")
}

// ResolveFID maps a normalized name to an fid, first through the fname registry and then,
// for ENS names, through ENS and the social graph's address index.
// Upstream failures count as "not found" for the registry that produced them.
func (c *Checker) ResolveFID(ctx context.Context, name string) (uint64, bool) {
	fid, err := c.up.NameRegistry.FIDByName(ctx, name)
	if err == nil && fid != 0 {
		return fid, true
	}
	if err != nil {
		c.lookupFailed("fname lookup failed", err, "name", name)
	}

	if !strings.HasSuffix(name, ENSSuffix) {
		return 0, false
	}

	address, err := c.up.NameService.ResolveENS(ctx, name)
	if err != nil {
		c.lookupFailed("ens resolution failed", err, "name", name)
		return 0, false
	}

	fid, err = c.up.SocialGraph.FIDByAddress(ctx, address)
	if err != nil {
		c.lookupFailed("address to fid lookup failed", err, "name", name, "address", address)
		return 0, false
	}
	if fid == 0 {
		return 0, false
	}

	return fid, true
}
