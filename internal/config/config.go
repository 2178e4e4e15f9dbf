package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"gaschecker/internal/core"
	"gaschecker/internal/explorer"
	"gaschecker/internal/farcaster"
	"gaschecker/internal/price"
)

var errInvalidEnvVar error = errors.New("invalid environment variable")

var methodIDPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{8}$`)

const (
	apiPortEnvKey         = "API_PORT"
	ethereumRPCEnvKey     = "ETHEREUM_RPC"
	baseRPCEnvKey         = "BASE_RPC"
	optimismRPCEnvKey     = "OPTIMISM_RPC"
	neynarAPIKeyEnvKey    = "NEYNAR_API_KEY"
	etherscanAPIKeyEnvKey = "ETHERSCAN_API_KEY"
	basescanAPIKeyEnvKey  = "BASESCAN_API_KEY"
	explorerURLEnvKey     = "EXPLORER_URL"
	explorerChainEnvKey   = "EXPLORER_CHAIN_ID"
	explorerPageEnvKey    = "EXPLORER_PAGE_SIZE"
	methodIDEnvKey        = "METHOD_ID"
	corsOriginsEnvKey     = "CORS_ORIGINS"
	logLevelEnvKey        = "LOG_LEVEL"
	otelEndpointEnvKey    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	fnamesURLEnvKey       = "FNAMES_URL"
	neynarURLEnvKey       = "NEYNAR_URL"
	hubURLEnvKey          = "HUB_URL"
	coinGeckoURLEnvKey    = "COINGECKO_URL"
)

const (
	defaultPort        = "8000"
	defaultEthereumRPC = "https://eth-mainnet.g.alchemy.com/v2/demo"
	defaultBaseRPC     = "https://mainnet.base.org"
	defaultOptimismRPC = "https://mainnet.optimism.io"
	defaultCORSOrigins = "http://localhost:3000,http://localhost:3001"
	defaultLogLevel    = "info"
)

type App struct {
	Port         string
	EthereumRPC  string
	BaseRPC      string
	OptimismRPC  string
	NeynarAPIKey string
	Explorer     explorer.Config
	MethodID     string
	CORSOrigins  []string
	LogLevel     string
	OTLPEndpoint string
	FnamesURL    string
	NeynarURL    string
	HubURL       string
	CoinGeckoURL string
}

// NewApp builds the configuration from the environment, loading a .env file first when present.
// Every key is optional.
func NewApp() (App, error) {
	_ = godotenv.Load()

	chainID, err := uintEnv(explorerChainEnvKey, explorer.DefaultChainID)
	if err != nil {
		return App{}, err
	}

	pageSize, err := uintEnv(explorerPageEnvKey, explorer.DefaultPageSize)
	if err != nil {
		return App{}, err
	}
	if pageSize == 0 {
		return App{}, fmt.Errorf("%w: %s must be positive", errInvalidEnvVar, explorerPageEnvKey)
	}

	methodID := stringEnv(methodIDEnvKey, core.DefaultMethodID)
	if !methodIDPattern.MatchString(methodID) {
		return App{}, fmt.Errorf("%w: %s=%q is not a 4-byte selector", errInvalidEnvVar, methodIDEnvKey, methodID)
	}

	apiKey := stringEnv(etherscanAPIKeyEnvKey, "")
	if apiKey == "" {
		apiKey = stringEnv(basescanAPIKeyEnvKey, "")
	}

	return App{
		Port:         stringEnv(apiPortEnvKey, defaultPort),
		EthereumRPC:  stringEnv(ethereumRPCEnvKey, defaultEthereumRPC),
		BaseRPC:      stringEnv(baseRPCEnvKey, defaultBaseRPC),
		OptimismRPC:  stringEnv(optimismRPCEnvKey, defaultOptimismRPC),
		NeynarAPIKey: stringEnv(neynarAPIKeyEnvKey, ""),
		Explorer: explorer.Config{
			URL:      stringEnv(explorerURLEnvKey, explorer.DefaultURL),
			APIKey:   apiKey,
			ChainID:  chainID,
			PageSize: int(pageSize),
		},
		MethodID:     strings.ToLower(methodID),
		CORSOrigins:  splitList(stringEnv(corsOriginsEnvKey, defaultCORSOrigins)),
		LogLevel:     stringEnv(logLevelEnvKey, defaultLogLevel),
		OTLPEndpoint: stringEnv(otelEndpointEnvKey, ""),
		FnamesURL:    stringEnv(fnamesURLEnvKey, farcaster.DefaultFnamesURL),
		NeynarURL:    stringEnv(neynarURLEnvKey, farcaster.DefaultNeynarURL),
		HubURL:       stringEnv(hubURLEnvKey, farcaster.DefaultHubURL),
		CoinGeckoURL: stringEnv(coinGeckoURLEnvKey, price.DefaultCoinGeckoURL),
	}, nil
}

func stringEnv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

func uintEnv(key string, fallback uint64) (uint64, error) {
	value := stringEnv(key, "")
	if value == "" {
		return fallback, nil
	}

	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errInvalidEnvVar, key, err)
	}
	return n, nil
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
