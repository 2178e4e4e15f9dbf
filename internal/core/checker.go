package core

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"gaschecker/internal/upstream"
)

// Upstreams groups the external services the pipeline depends on.
type Upstreams struct {
	SocialGraph    SocialGraph
	NameRegistry   NameRegistry
	NameService    NameService
	Hub            VerificationHub
	PrimaryChain   ActivityCounter
	SecondaryChain ActivityCounter
	History        TransactionHistory
	Prices         PriceFeed
}

// Checker resolves a Farcaster username to its primary wallet and computes the method volume of that wallet.
type Checker struct {
	logs     *zap.SugaredLogger
	methodID string
	up       Upstreams
	tracer   trace.Tracer
}

// NewChecker is a constructor function for the Checker type.
func NewChecker(logger *zap.SugaredLogger, methodID string, upstreams Upstreams) *Checker {
	if methodID == "" {
		methodID = DefaultMethodID
	}
	return &Checker{
		logs:     logger,
		methodID: strings.ToLower(methodID),
		up:       upstreams,
		tracer:   otel.Tracer("gaschecker/core"),
	}
}

type resolution struct {
	username string
	profile  Profile
	wallet   string
	wallets  []WalletInfo
}

// CheckGas runs the whole pipeline for one username. It never fails: every outcome is a GasResult.
func (c *Checker) CheckGas(ctx context.Context, username string) GasResult {
	ctx, span := c.tracer.Start(ctx, "CheckGas")
	defer span.End()

	res, state := c.resolve(ctx, username)
	span.SetAttributes(attribute.String("pipeline.state", string(state)))

	if state != StateSuccess {
		result := GasResult{
			State:       state,
			Success:     false,
			Username:    res.username,
			FID:         fidPtr(res.profile.FID),
			DisplayName: res.profile.DisplayName,
			PfpURL:      res.profile.PfpURL,
			Wallets:     res.wallets,
			ETHPrice:    c.ETHPrice(ctx),
			Error:       errorMessage(state),
		}
		c.logs.Infow("gas check finished", "username", res.username, "state", state)
		return result
	}

	volume := c.ComputeVolume(ctx, res.wallet)

	c.logs.Infow("gas check finished",
		"username", res.username,
		"state", state,
		"fid", res.profile.FID,
		"wallet", res.wallet,
		"transactions", volume.TotalTransactions,
		"volume_eth", volume.TotalVolumeETH.String())

	wallet := res.wallet
	return GasResult{
		State:             StateSuccess,
		Success:           true,
		Username:          res.username,
		FID:               fidPtr(res.profile.FID),
		DisplayName:       res.profile.DisplayName,
		PfpURL:            res.profile.PfpURL,
		PrimaryWallet:     &wallet,
		Wallets:           res.wallets,
		TotalTransactions: volume.TotalTransactions,
		TotalVolumeETH:    volume.TotalVolumeETH.InexactFloat64(),
		TotalGasETH:       volume.TotalGasETH.InexactFloat64(),
		TotalGasUSD:       volume.TotalGasUSD,
		ETHPrice:          volume.ETHPrice,
	}
}

// QuickCheck resolves identity and primary wallet only.
func (c *Checker) QuickCheck(ctx context.Context, username string) QuickResult {
	ctx, span := c.tracer.Start(ctx, "QuickCheck")
	defer span.End()

	res, state := c.resolve(ctx, username)
	span.SetAttributes(attribute.String("pipeline.state", string(state)))

	result := QuickResult{
		State:       state,
		Success:     state == StateSuccess,
		Username:    res.username,
		FID:         fidPtr(res.profile.FID),
		DisplayName: res.profile.DisplayName,
		PfpURL:      res.profile.PfpURL,
		Wallets:     res.wallets,
		Error:       errorMessage(state),
	}
	if state == StateSuccess {
		wallet := res.wallet
		result.PrimaryWallet = &wallet
	}
	return result
}

func (c *Checker) resolve(ctx context.Context, raw string) (resolution, State) {
	res := resolution{username: NormalizeUsername(raw)}

	identityCtx, identitySpan := c.tracer.Start(ctx, "ResolvingIdentity")
	profile, ok := c.resolveProfile(identityCtx, res.username)
	identitySpan.End()
	if !ok {
		return res, StateFIDNotFound
	}
	res.profile = profile

	walletCtx, walletSpan := c.tracer.Start(ctx, "ResolvingWallet",
		trace.WithAttributes(attribute.Int64("fid", int64(profile.FID))))
	defer walletSpan.End()

	candidates := c.DiscoverWallets(walletCtx, profile.FID)
	wallet, wallets, found := c.SelectPrimaryWallet(walletCtx, candidates)
	res.wallets = wallets
	if !found {
		return res, StateWalletNotFound
	}
	res.wallet = wallet

	return res, StateSuccess
}

// resolveProfile tries the direct username lookup first and falls back to the identity resolver.
func (c *Checker) resolveProfile(ctx context.Context, username string) (Profile, bool) {
	if profile, ok := c.ProfileByUsername(ctx, username); ok {
		return profile, true
	}

	fid, ok := c.ResolveFID(ctx, username)
	if !ok {
		return Profile{}, false
	}

	profile, ok := c.ProfileByFID(ctx, fid)
	if !ok {
		return Profile{FID: fid}, true
	}
	profile.FID = fid
	return profile, true
}

// lookupFailed logs an upstream failure. Empty answers are expected and logged at info.
func (c *Checker) lookupFailed(msg string, err error, keysAndValues ...any) {
	keysAndValues = append(keysAndValues, "error", err)
	if upstream.IsNotFound(err) {
		c.logs.Infow(msg, keysAndValues...)
		return
	}
	c.logs.Warnw(msg, keysAndValues...)
}

func fidPtr(fid uint64) *uint64 {
	if fid == 0 {
		return nil
	}
	return &fid
}

func errorMessage(state State) *string {
	var msg string
	switch state {
	case StateFIDNotFound:
		msg = ErrMsgFIDNotFound
	case StateWalletNotFound:
		msg = ErrMsgWalletNotFound
	default:
		return nil
	}
	return &msg
}
