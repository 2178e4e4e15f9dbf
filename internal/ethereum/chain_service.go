package ethereum

import (
	"context"
	"errors"
	"fmt"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"gaschecker/internal/upstream"
)

var (
	ErrInvalidAddress error = errors.New("invalid address")
	ErrNameNotFound   error = fmt.Errorf("ens name has no address: %w", upstream.ErrNotFound)
)

// ChainService answers account queries against a single EVM chain.
type ChainService struct {
	name    string
	client  EthClient
	gateway *upstream.Client
}

func NewChainService(name string, ethClient EthClient) *ChainService {
	return &ChainService{
		name:    name,
		client:  ethClient,
		gateway: upstream.NewClient(name+" ccip gateway", upstream.LookupTimeout, nil),
	}
}

func (s *ChainService) Name() string {
	return s.name
}

// TransactionCount returns the number of transactions sent from address at the latest block.
func (s *ChainService) TransactionCount(ctx context.Context, address string) (uint64, error) {
	if !common.IsHexAddress(address) {
		return 0, upstream.NewError(s.service(), "transaction count", fmt.Errorf("%w: %q", ErrInvalidAddress, address))
	}

	ctx, cancel := context.WithTimeout(ctx, upstream.LookupTimeout)
	defer cancel()

	nonce, err := s.client.NonceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return 0, upstream.NewError(s.service(), "transaction count", err)
	}

	return nonce, nil
}

// ResolveENS resolves an ENS name to its checksummed address.
// The name is UTS-46 normalized, the resolver is looked up on the name or its closest ancestor (ENSIP-10),
// and resolvers that defer to a gateway are followed through EIP-3668.
func (s *ChainService) ResolveENS(ctx context.Context, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, upstream.LookupTimeout)
	defer cancel()

	name = NormalizeName(name)
	if name == "" {
		return "", upstream.NewError(s.service(), "ens resolver", ErrNameNotFound)
	}

	parsed, err := ensABI()
	if err != nil {
		return "", upstream.NewError(s.service(), "ens abi", err)
	}

	resolver, exact, err := s.findResolver(ctx, parsed, name)
	if err != nil {
		return "", upstream.NewError(s.service(), "ens resolver", err)
	}
	if resolver == (common.Address{}) {
		return "", upstream.NewError(s.service(), "ens resolver", ErrNameNotFound)
	}

	node := NameHash(name)

	var addr common.Address
	switch {
	case s.supportsWildcard(ctx, parsed, resolver):
		addr, err = s.resolveExtended(ctx, parsed, resolver, name, node)
	case exact:
		addr, err = s.resolveAddr(ctx, parsed, resolver, node)
	default:
		return "", upstream.NewError(s.service(), "ens resolver", ErrNameNotFound)
	}
	if err != nil {
		return "", upstream.NewError(s.service(), "ens addr", err)
	}
	if addr == (common.Address{}) {
		return "", upstream.NewError(s.service(), "ens addr", ErrNameNotFound)
	}

	return addr.Hex(), nil
}

// findResolver walks from name towards the root and returns the first resolver set in the registry.
// exact reports whether it belongs to name itself.
func (s *ChainService) findResolver(ctx context.Context, parsed abi.ABI, name string) (common.Address, bool, error) {
	for candidate, ok := name, true; ok; candidate, ok = parentName(candidate) {
		values, err := s.callMethod(ctx, parsed, ENSRegistry, "resolver", [32]byte(NameHash(candidate)))
		if err != nil {
			return common.Address{}, false, err
		}

		resolver, _ := values[0].(common.Address)
		if resolver != (common.Address{}) {
			return resolver, candidate == name, nil
		}
	}

	return common.Address{}, false, nil
}

// supportsWildcard reports whether resolver implements resolve(bytes,bytes).
// Resolvers that revert on supportsInterface are treated as legacy ones.
func (s *ChainService) supportsWildcard(ctx context.Context, parsed abi.ABI, resolver common.Address) bool {
	values, err := s.callMethod(ctx, parsed, resolver, "supportsInterface", extendedResolverID)
	if err != nil {
		return false
	}

	supported, _ := values[0].(bool)
	return supported
}

func (s *ChainService) resolveAddr(ctx context.Context, parsed abi.ABI, resolver common.Address, node common.Hash) (common.Address, error) {
	values, err := s.callMethod(ctx, parsed, resolver, "addr", [32]byte(node))
	if err != nil {
		return common.Address{}, err
	}

	addr, _ := values[0].(common.Address)
	return addr, nil
}

func (s *ChainService) resolveExtended(ctx context.Context, parsed abi.ABI, resolver common.Address, name string, node common.Hash) (common.Address, error) {
	encodedName, err := DNSEncode(name)
	if err != nil {
		return common.Address{}, err
	}
	inner, err := parsed.Pack("addr", [32]byte(node))
	if err != nil {
		return common.Address{}, fmt.Errorf("pack addr: %w", err)
	}

	values, err := s.callMethod(ctx, parsed, resolver, "resolve", encodedName, inner)
	if err != nil {
		return common.Address{}, err
	}

	result, _ := values[0].([]byte)
	if len(result) == 0 {
		return common.Address{}, nil
	}

	decoded, err := parsed.Unpack("addr", result)
	if err != nil {
		return common.Address{}, fmt.Errorf("unpack resolved addr: %w", err)
	}

	addr, _ := decoded[0].(common.Address)
	return addr, nil
}

func (s *ChainService) callMethod(ctx context.Context, parsed abi.ABI, contract common.Address, method string, args ...interface{}) ([]interface{}, error) {
	data, err := parsed.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	out, err := s.callWithOffchain(ctx, parsed, contract, data)
	if err != nil {
		return nil, err
	}

	values, err := parsed.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("call contract %s: unpack %s: %w", contract.Hex(), method, err)
	}

	return values, nil
}

// callWithOffchain runs an eth_call and follows OffchainLookup reverts raised by contract.
func (s *ChainService) callWithOffchain(ctx context.Context, parsed abi.ABI, contract common.Address, data []byte) ([]byte, error) {
	for lookups := 0; ; lookups++ {
		out, err := s.client.CallContract(ctx, geth.CallMsg{To: &contract, Data: data}, nil)
		if err == nil {
			return out, nil
		}

		lookup, ok := asOffchainLookup(err)
		if !ok {
			return nil, fmt.Errorf("call contract %s: %w", contract.Hex(), err)
		}
		if lookups == maxOffchainLookups {
			return nil, fmt.Errorf("call contract %s: %w", contract.Hex(), ErrTooManyLookups)
		}
		if lookup.Sender != contract {
			return nil, fmt.Errorf("call contract %s: offchain lookup from foreign sender %s", contract.Hex(), lookup.Sender.Hex())
		}

		response, err := s.fetchOffchain(ctx, lookup)
		if err != nil {
			return nil, fmt.Errorf("call contract %s: %w", contract.Hex(), err)
		}

		// the callback takes (bytes response, bytes extraData), the same inputs as resolve
		args, err := parsed.Methods["resolve"].Inputs.Pack(response, lookup.ExtraData)
		if err != nil {
			return nil, fmt.Errorf("pack offchain callback: %w", err)
		}
		data = append(lookup.Callback[:], args...)
	}
}

func (s *ChainService) service() string {
	return s.name + " rpc"
}
