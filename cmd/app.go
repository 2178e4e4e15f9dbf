package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"gaschecker/internal/config"
	"gaschecker/internal/core"
	"gaschecker/internal/ethereum"
	"gaschecker/internal/explorer"
	"gaschecker/internal/farcaster"
	"gaschecker/internal/price"
	"gaschecker/pkg/log"
)

// app holds the process-wide clients. They are built once and passed down explicitly.
type app struct {
	logs    *zap.SugaredLogger
	config  config.App
	checker *core.Checker
	closers []func()
}

func newApp() (*app, error) {
	cfg, err := config.NewApp()
	if err != nil {
		return nil, fmt.Errorf("create config: %w", err)
	}

	logger := log.NewZapLogger(serviceName, log.ParseLevel(cfg.LogLevel))

	ethClient, err := ethclient.Dial(cfg.EthereumRPC)
	if err != nil {
		logger.Errorw("ethereum rpc connection failed", "error", err)
		return nil, fmt.Errorf("dial ethereum rpc: %w", err)
	}

	baseClient, err := ethclient.Dial(cfg.BaseRPC)
	if err != nil {
		ethClient.Close()
		logger.Errorw("base rpc connection failed", "error", err)
		return nil, fmt.Errorf("dial base rpc: %w", err)
	}

	if cfg.NeynarAPIKey == "" {
		logger.Warnw("NEYNAR_API_KEY is not set, social graph lookups will fail")
	}
	if cfg.Explorer.APIKey == "" {
		logger.Warnw("explorer api key is not set, transaction history lookups will fail")
	}

	ethChain := ethereum.NewChainService("ethereum", ethClient)
	baseChain := ethereum.NewChainService("base", baseClient)

	checker := core.NewChecker(logger, cfg.MethodID, core.Upstreams{
		SocialGraph:    farcaster.NewNeynar(cfg.NeynarURL, cfg.NeynarAPIKey),
		NameRegistry:   farcaster.NewFnameRegistry(cfg.FnamesURL),
		NameService:    ethChain,
		Hub:            farcaster.NewHub(cfg.HubURL),
		PrimaryChain:   ethChain,
		SecondaryChain: baseChain,
		History:        explorer.NewEtherscan(cfg.Explorer),
		Prices:         price.NewCoinGecko(cfg.CoinGeckoURL),
	})

	logger.Infow("configuration loaded",
		"ethereum_rpc", cfg.EthereumRPC,
		"base_rpc", cfg.BaseRPC,
		"optimism_rpc", cfg.OptimismRPC,
		"explorer_chain_id", cfg.Explorer.ChainID,
		"explorer_page_size", cfg.Explorer.PageSize,
		"method_id", cfg.MethodID)

	return &app{
		logs:    logger,
		config:  cfg,
		checker: checker,
		closers: []func(){ethClient.Close, baseClient.Close},
	}, nil
}

func (a *app) Close() {
	for _, closeFn := range a.closers {
		closeFn()
	}
	_ = a.logs.Sync()
}
