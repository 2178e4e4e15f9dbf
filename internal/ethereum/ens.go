package ethereum

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
	"golang.org/x/net/idna"
)

// ENSRegistry is the mainnet ENS registry address.
var ENSRegistry = common.HexToAddress("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e")

// extendedResolverID is the ENSIP-10 interface id of resolve(bytes,bytes).
var extendedResolverID = [4]byte{0x90, 0x61, 0xb9, 0x23}

const ensABIJSON = `[
	{"type":"function","name":"resolver","stateMutability":"view",
	 "inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"addr","stateMutability":"view",
	 "inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"resolve","stateMutability":"view",
	 "inputs":[{"name":"name","type":"bytes"},{"name":"data","type":"bytes"}],"outputs":[{"name":"","type":"bytes"}]},
	{"type":"function","name":"supportsInterface","stateMutability":"view",
	 "inputs":[{"name":"interfaceID","type":"bytes4"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"error","name":"OffchainLookup",
	 "inputs":[{"name":"sender","type":"address"},{"name":"urls","type":"string[]"},{"name":"callData","type":"bytes"},
	           {"name":"callbackFunction","type":"bytes4"},{"name":"extraData","type":"bytes"}]}
]`

var ensABI = sync.OnceValues(func() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(ensABIJSON))
})

var nameProfile = idna.New(idna.MapForLookup(), idna.Transitional(false), idna.StrictDomainName(false))

// NormalizeName applies UTS-46 mapping to an ENS name.
// Names the mapping rejects are only lowercased.
func NormalizeName(name string) string {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")
	normalized, err := nameProfile.ToUnicode(name)
	if err != nil {
		return strings.ToLower(name)
	}
	return normalized
}

// NameHash computes the EIP-137 namehash of an ENS name.
func NameHash(name string) common.Hash {
	var node common.Hash
	if name == "" {
		return node
	}

	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		labelHash := crypto.Keccak256([]byte(labels[i]))
		node = crypto.Keccak256Hash(node.Bytes(), labelHash)
	}
	return node
}

// DNSEncode encodes name in DNS wire format, as resolve(bytes,bytes) expects it.
func DNSEncode(name string) ([]byte, error) {
	if name == "" {
		return []byte{0}, nil
	}

	labels := strings.Split(name, ".")
	out := make([]byte, 0, len(name)+2)
	for _, label := range labels {
		if len(label) == 0 || len(label) > 255 {
			return nil, fmt.Errorf("dns encode %q: invalid label length %d", name, len(label))
		}
		out = append(out, byte(len(label)))
		out = append(out, label...)
	}
	return append(out, 0), nil
}

// parentName drops the leftmost label. It reports false for a single-label name.
func parentName(name string) (string, bool) {
	i := strings.IndexByte(name, '.')
	if i < 0 {
		return "", false
	}
	return name[i+1:], true
}

// offchainLookup is the EIP-3668 revert a resolver raises to defer to a gateway.
type offchainLookup struct {
	Sender    common.Address
	URLs      []string
	CallData  []byte
	Callback  [4]byte
	ExtraData []byte
}

// asOffchainLookup extracts an OffchainLookup revert from a failed eth_call.
func asOffchainLookup(err error) (offchainLookup, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return offchainLookup{}, false
	}

	encoded, ok := dataErr.ErrorData().(string)
	if !ok {
		return offchainLookup{}, false
	}
	data, decodeErr := hexutil.Decode(encoded)
	if decodeErr != nil {
		return offchainLookup{}, false
	}

	parsed, abiErr := ensABI()
	if abiErr != nil {
		return offchainLookup{}, false
	}
	lookupErr := parsed.Errors["OffchainLookup"]
	values, unpackErr := lookupErr.Unpack(data)
	if unpackErr != nil {
		return offchainLookup{}, false
	}

	fields, ok := values.([]interface{})
	if !ok || len(fields) != 5 {
		return offchainLookup{}, false
	}

	var lookup offchainLookup
	lookup.Sender, _ = fields[0].(common.Address)
	lookup.URLs, _ = fields[1].([]string)
	lookup.CallData, _ = fields[2].([]byte)
	lookup.Callback, _ = fields[3].([4]byte)
	lookup.ExtraData, _ = fields[4].([]byte)
	return lookup, true
}
