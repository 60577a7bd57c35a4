package vault

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	"github.com/cosmos/cosmos-sdk/client"
	sdktypes "github.com/cosmos/cosmos-sdk/types"

	cosmwasmapi "github.com/mdjakovic0920/cw-vault-standard/cosmwasm-api"
	"github.com/mdjakovic0920/cw-vault-standard/vault/lockup"
)

// VaultContractUnchecked is a helper to interact with a vault contract that
// adheres to the vault standard, holding a not yet validated address. Calling
// Check validates the address and returns the checked VaultContract.
type VaultContractUnchecked struct {
	Addr string `json:"addr"`
}

func NewVaultContractUnchecked(addr string) VaultContractUnchecked {
	return VaultContractUnchecked{Addr: addr}
}

// Check validates the address as bech32 and returns the checked contract.
func (v VaultContractUnchecked) Check() (VaultContract, error) {
	addr, err := sdktypes.AccAddressFromBech32(v.Addr)
	if err != nil {
		return VaultContract{}, fmt.Errorf("invalid vault address %q: %w", v.Addr, err)
	}
	return NewVaultContract(addr), nil
}

// VaultContract is a helper to interact with a vault contract that adheres to
// the vault standard.
type VaultContract struct {
	// The address of the vault contract.
	Addr sdktypes.AccAddress `json:"addr"`
}

func NewVaultContract(addr sdktypes.AccAddress) VaultContract {
	return VaultContract{Addr: addr}
}

// Unchecked returns the unchecked form of the contract.
func (v VaultContract) Unchecked() VaultContractUnchecked {
	return VaultContractUnchecked{Addr: v.Addr.String()}
}

func (v VaultContract) executeMsg(sender sdktypes.AccAddress, msg *ExecuteMsg, funds sdktypes.Coins) (*wasmtypes.MsgExecuteContract, error) {
	msgBytes, err := msg.Marshal()
	if err != nil {
		return nil, err
	}

	return &wasmtypes.MsgExecuteContract{
		Sender:   sender.String(),
		Contract: v.Addr.String(),
		Msg:      msgBytes,
		Funds:    funds,
	}, nil
}

// DepositMsg returns a MsgExecuteContract to deposit base tokens into the
// vault. The base tokens are attached in the funds field.
func (v VaultContract) DepositMsg(sender sdktypes.AccAddress, amount math.Int, baseDenom string, recipient *string) (*wasmtypes.MsgExecuteContract, error) {
	msg := &ExecuteMsg{
		Deposit: &Deposit{Amount: amount.String(), Recipient: recipient},
	}
	return v.executeMsg(sender, msg, sdktypes.NewCoins(sdktypes.NewCoin(baseDenom, amount)))
}

// DepositCW20Msg returns a MsgExecuteContract to deposit cw20 base tokens
// into the vault, leaving the funds field empty. The sender must have
// approved spend for the cw20 tokens first.
func (v VaultContract) DepositCW20Msg(sender sdktypes.AccAddress, amount math.Int, recipient *string) (*wasmtypes.MsgExecuteContract, error) {
	msg := &ExecuteMsg{
		Deposit: &Deposit{Amount: amount.String(), Recipient: recipient},
	}
	return v.executeMsg(sender, msg, sdktypes.Coins{})
}

// RedeemMsg returns a MsgExecuteContract to redeem vault tokens from the
// vault. The vault tokens are attached in the funds field.
func (v VaultContract) RedeemMsg(sender sdktypes.AccAddress, amount math.Int, vaultTokenDenom string, recipient *string) (*wasmtypes.MsgExecuteContract, error) {
	msg := &ExecuteMsg{
		Redeem: &Redeem{Amount: amount.String(), Recipient: recipient},
	}
	return v.executeMsg(sender, msg, sdktypes.NewCoins(sdktypes.NewCoin(vaultTokenDenom, amount)))
}

// UnlockMsg returns a MsgExecuteContract to initiate unlocking a locked
// position, for vaults with the lockup extension. The vault tokens are
// attached in the funds field.
func (v VaultContract) UnlockMsg(sender sdktypes.AccAddress, amount math.Int, vaultTokenDenom string) (*wasmtypes.MsgExecuteContract, error) {
	msg := &ExecuteMsg{
		VaultExtension: &ExtensionExecuteMsg{
			Lockup: &lockup.ExecuteMsg{
				Unlock: &lockup.Unlock{Amount: amount.String()},
			},
		},
	}
	return v.executeMsg(sender, msg, sdktypes.NewCoins(sdktypes.NewCoin(vaultTokenDenom, amount)))
}

// WithdrawUnlockedMsg returns a MsgExecuteContract to withdraw from an
// unlocking position that has finished unlocking.
func (v VaultContract) WithdrawUnlockedMsg(sender sdktypes.AccAddress, lockupID uint64, recipient *string) (*wasmtypes.MsgExecuteContract, error) {
	msg := &ExecuteMsg{
		VaultExtension: &ExtensionExecuteMsg{
			Lockup: &lockup.ExecuteMsg{
				WithdrawUnlocked: &lockup.WithdrawUnlocked{
					LockupID:  lockupID,
					Recipient: recipient,
				},
			},
		},
	}
	return v.executeMsg(sender, msg, sdktypes.Coins{})
}

// ForceWithdrawMsg returns a MsgExecuteContract to bypass the lockup and
// immediately withdraw. Only callable by whitelisted addresses. The vault
// tokens are attached in the funds field.
func (v VaultContract) ForceWithdrawMsg(sender sdktypes.AccAddress, amount math.Int, vaultTokenDenom string, recipient *string) (*wasmtypes.MsgExecuteContract, error) {
	msg := &ExecuteMsg{
		VaultExtension: &ExtensionExecuteMsg{
			Lockup: &lockup.ExecuteMsg{
				ForceWithdraw: &lockup.ForceWithdraw{
					Amount:    amount.String(),
					Recipient: recipient,
				},
			},
		},
	}
	return v.executeMsg(sender, msg, sdktypes.NewCoins(sdktypes.NewCoin(vaultTokenDenom, amount)))
}

// ForceWithdrawUnlockingMsg returns a MsgExecuteContract to force withdraw
// from a position that is already unlocking. If amount is nil the entire
// position is withdrawn.
func (v VaultContract) ForceWithdrawUnlockingMsg(sender sdktypes.AccAddress, lockupID uint64, amount *math.Int, recipient *string) (*wasmtypes.MsgExecuteContract, error) {
	var amountStr *string
	if amount != nil {
		s := amount.String()
		amountStr = &s
	}

	msg := &ExecuteMsg{
		VaultExtension: &ExtensionExecuteMsg{
			Lockup: &lockup.ExecuteMsg{
				ForceWithdrawUnlocking: &lockup.ForceWithdrawUnlocking{
					LockupID:  lockupID,
					Amount:    amountStr,
					Recipient: recipient,
				},
			},
		},
	}
	return v.executeMsg(sender, msg, sdktypes.Coins{})
}

// Execute signs and broadcasts the given execute msg against the vault
// contract, attaching funds, with the from key of the clientCtx as sender.
func (v VaultContract) Execute(
	clientCtx client.Context, ctx context.Context, msg *ExecuteMsg, funds sdktypes.Coins, opts cosmwasmapi.BroadcastOptions,
) (*coretypes.ResultTx, error) {
	msgBytes, err := msg.Marshal()
	if err != nil {
		return nil, err
	}

	opts = opts.WithContractAddr(v.Addr.String()).WithCoins(funds...)
	opts.ExecuteMsg = msgBytes

	return cosmwasmapi.Execute(clientCtx, ctx, clientCtx.GetFromAddress().String(), opts)
}

// QueryVaultStandardInfo queries the vault for the version of the vault
// standard it implements and its enabled extensions.
func (v VaultContract) QueryVaultStandardInfo(clientCtx client.Context, ctx context.Context) (VaultStandardInfoResponse, error) {
	return cosmwasmapi.Query[VaultStandardInfoResponse](
		clientCtx, ctx, v.Addr.String(),
		QueryMsg{VaultStandardInfo: &VaultStandardInfo{}},
	)
}

// QueryInfo queries the vault for its base token and vault token.
func (v VaultContract) QueryInfo(clientCtx client.Context, ctx context.Context) (VaultInfoResponse, error) {
	return cosmwasmapi.Query[VaultInfoResponse](
		clientCtx, ctx, v.Addr.String(),
		QueryMsg{Info: &Info{}},
	)
}

func (v VaultContract) queryAmount(clientCtx client.Context, ctx context.Context, msg QueryMsg) (math.Int, error) {
	response, err := cosmwasmapi.Query[string](clientCtx, ctx, v.Addr.String(), msg)
	if err != nil {
		return math.Int{}, err
	}
	return parseUint128(response)
}

func (v VaultContract) queryOptionalAmount(clientCtx client.Context, ctx context.Context, msg QueryMsg) (*math.Int, error) {
	response, err := cosmwasmapi.Query[*string](clientCtx, ctx, v.Addr.String(), msg)
	if err != nil || response == nil {
		return nil, err
	}
	amount, err := parseUint128(*response)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

// QueryPreviewDeposit queries the amount of vault tokens that would be minted
// for depositing the given amount of base tokens.
func (v VaultContract) QueryPreviewDeposit(clientCtx client.Context, ctx context.Context, amount math.Int) (math.Int, error) {
	return v.queryAmount(clientCtx, ctx, QueryMsg{
		PreviewDeposit: &PreviewDeposit{Amount: amount.String()},
	})
}

// QueryPreviewRedeem queries the amount of base tokens that would be
// withdrawn for redeeming the given amount of vault tokens.
func (v VaultContract) QueryPreviewRedeem(clientCtx client.Context, ctx context.Context, amount math.Int) (math.Int, error) {
	return v.queryAmount(clientCtx, ctx, QueryMsg{
		PreviewRedeem: &PreviewRedeem{Amount: amount.String()},
	})
}

// QueryMaxDeposit queries the maximum amount of base tokens that can be
// deposited for the recipient. Returns nil if the vault imposes no limit.
func (v VaultContract) QueryMaxDeposit(clientCtx client.Context, ctx context.Context, recipient string) (*math.Int, error) {
	return v.queryOptionalAmount(clientCtx, ctx, QueryMsg{
		MaxDeposit: &MaxDeposit{Recipient: recipient},
	})
}

// QueryMaxRedeem queries the maximum amount of vault tokens that can be
// redeemed from the owner's balance. Returns nil if the vault imposes no
// limit.
func (v VaultContract) QueryMaxRedeem(clientCtx client.Context, ctx context.Context, owner string) (*math.Int, error) {
	return v.queryOptionalAmount(clientCtx, ctx, QueryMsg{
		MaxRedeem: &MaxRedeem{Owner: owner},
	})
}

// QueryTotalAssets queries the total assets held in the vault, denominated in
// base tokens.
func (v VaultContract) QueryTotalAssets(clientCtx client.Context, ctx context.Context) (math.Int, error) {
	return v.queryAmount(clientCtx, ctx, QueryMsg{TotalAssets: &TotalAssets{}})
}

// QueryTotalVaultTokenSupply queries the total amount of vault tokens in
// circulation.
func (v VaultContract) QueryTotalVaultTokenSupply(clientCtx client.Context, ctx context.Context) (math.Int, error) {
	return v.queryAmount(clientCtx, ctx, QueryMsg{TotalVaultTokenSupply: &TotalVaultTokenSupply{}})
}

// QueryConvertToShares queries the amount of vault tokens the vault would
// exchange for the given amount of base tokens.
func (v VaultContract) QueryConvertToShares(clientCtx client.Context, ctx context.Context, amount math.Int) (math.Int, error) {
	return v.queryAmount(clientCtx, ctx, QueryMsg{
		ConvertToShares: &ConvertToShares{Amount: amount.String()},
	})
}

// QueryConvertToAssets queries the amount of base tokens the vault would
// exchange for the given amount of vault tokens.
func (v VaultContract) QueryConvertToAssets(clientCtx client.Context, ctx context.Context, amount math.Int) (math.Int, error) {
	return v.queryAmount(clientCtx, ctx, QueryMsg{
		ConvertToAssets: &ConvertToAssets{Amount: amount.String()},
	})
}

// QueryLockups queries all currently unclaimed unlocking positions for the
// owner, for vaults with the lockup extension.
func (v VaultContract) QueryLockups(clientCtx client.Context, ctx context.Context, owner string, startAfter *uint64, limit *uint32) ([]lockup.Lockup, error) {
	return cosmwasmapi.Query[[]lockup.Lockup](
		clientCtx, ctx, v.Addr.String(),
		QueryMsg{VaultExtension: &ExtensionQueryMsg{
			Lockup: &lockup.QueryMsg{
				Lockups: &lockup.Lockups{Owner: owner, StartAfter: startAfter, Limit: limit},
			},
		}},
	)
}

// QueryLockup queries a specific unlocking position by id.
func (v VaultContract) QueryLockup(clientCtx client.Context, ctx context.Context, lockupID uint64) (lockup.Lockup, error) {
	return cosmwasmapi.Query[lockup.Lockup](
		clientCtx, ctx, v.Addr.String(),
		QueryMsg{VaultExtension: &ExtensionQueryMsg{
			Lockup: &lockup.QueryMsg{
				Lockup: &lockup.LockupByID{LockupID: lockupID},
			},
		}},
	)
}

// QueryLockupDuration queries the duration of the vault's lockup.
func (v VaultContract) QueryLockupDuration(clientCtx client.Context, ctx context.Context) (lockup.Duration, error) {
	return cosmwasmapi.Query[lockup.Duration](
		clientCtx, ctx, v.Addr.String(),
		QueryMsg{VaultExtension: &ExtensionQueryMsg{
			Lockup: &lockup.QueryMsg{
				LockupDuration: &lockup.LockupDuration{},
			},
		}},
	)
}

func parseUint128(s string) (math.Int, error) {
	amount, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid Uint128 in query response: %q", s)
	}
	return amount, nil
}
