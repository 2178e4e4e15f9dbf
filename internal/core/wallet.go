package core

import (
	"context"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"gaschecker/internal/farcaster"
)

// DiscoverWallets returns the verified Ethereum addresses of fid in hub order, checksummed.
// Duplicates are kept. Any hub failure yields an empty slice.
func (c *Checker) DiscoverWallets(ctx context.Context, fid uint64) []string {
	verifications, err := c.up.Hub.VerificationsByFID(ctx, fid)
	if err != nil {
		c.lookupFailed("verification lookup failed", err, "fid", fid)
		return []string{}
	}

	wallets := make([]string, 0, len(verifications))
	for _, v := range verifications {
		if v.Protocol != farcaster.ProtocolEthereum || v.Address == "" {
			continue
		}
		if !common.IsHexAddress(v.Address) {
			c.logs.Warnw("skipping malformed verified address", "fid", fid, "address", v.Address)
			continue
		}
		wallets = append(wallets, common.HexToAddress(v.Address).Hex())
	}

	return wallets
}

// SelectPrimaryWallet picks one wallet out of candidates:
//   - a single candidate is returned as is;
//   - among candidates with no transactions on the primary chain, the one with the most
//     transactions on the secondary chain wins;
//   - when every candidate has primary chain activity, the least active one wins.
//
// Ties go to the candidate discovered first. The returned WalletInfo list carries the counts
// that were actually queried.
func (c *Checker) SelectPrimaryWallet(ctx context.Context, candidates []string) (string, []WalletInfo, bool) {
	wallets := uniqueAddresses(candidates)

	switch len(wallets) {
	case 0:
		return "", nil, false
	case 1:
		return wallets[0], []WalletInfo{{Address: wallets[0], IsPrimary: true}}, true
	}

	infos := make([]WalletInfo, len(wallets))
	for i, w := range wallets {
		infos[i] = WalletInfo{Address: w}
	}

	primaryCounts := c.countActivity(ctx, c.up.PrimaryChain, wallets)

	var unused []int
	for i, count := range primaryCounts {
		infos[i].EthTxCount = &primaryCounts[i]
		if count == 0 {
			unused = append(unused, i)
		}
	}

	best := 0
	if len(unused) > 0 {
		unusedWallets := make([]string, len(unused))
		for j, idx := range unused {
			unusedWallets[j] = wallets[idx]
		}

		secondaryCounts := c.countActivity(ctx, c.up.SecondaryChain, unusedWallets)

		best = unused[0]
		var most uint64
		for j, idx := range unused {
			infos[idx].BaseTxCount = &secondaryCounts[j]
			if j == 0 || secondaryCounts[j] > most {
				most = secondaryCounts[j]
				best = idx
			}
		}
	} else {
		for i, count := range primaryCounts {
			if count < primaryCounts[best] {
				best = i
			}
		}
	}

	infos[best].IsPrimary = true

	c.logs.Infow("primary wallet selected",
		"wallet", wallets[best],
		"candidates", len(wallets),
		"unused", len(unused))

	return wallets[best], infos, true
}

// countActivity queries the transaction count of every address concurrently.
// The result is indexed like addresses; failed queries count as zero.
func (c *Checker) countActivity(ctx context.Context, counter ActivityCounter, addresses []string) []uint64 {
	counts := make([]uint64, len(addresses))

	var wg sync.WaitGroup
	for i, address := range addresses {
		wg.Add(1)
		go func(i int, address string) {
			defer wg.Done()
			count, err := counter.TransactionCount(ctx, address)
			if err != nil {
				c.logs.Warnw("transaction count failed",
					"chain", counter.Name(),
					"address", address,
					"error", err)
				return
			}
			counts[i] = count
		}(i, address)
	}
	wg.Wait()

	return counts
}

func uniqueAddresses(addresses []string) []string {
	seen := make(map[string]struct{}, len(addresses))
	unique := make([]string, 0, len(addresses))
	for _, a := range addresses {
		key := strings.ToLower(a)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, a)
	}
	return unique
}
