// Package vault contains the message types of the CosmWasm vault standard, a
// standardized interface for vault contracts that take a base token in
// exchange for a vault token representing a share of the vault, plus a helper
// for interacting with contracts that adhere to it.
package vault

import (
	"encoding/json"

	"github.com/mdjakovic0920/cw-vault-standard/vault/lockup"
)

// Version is the version of the vault standard this package implements. It is
// the value adhering contracts return in VaultStandardInfoResponse.Version.
const Version = "0.4.0"

// Extension names advertised in VaultStandardInfoResponse.Extensions.
const (
	ExtensionLockup      = "lockup"
	ExtensionForceUnlock = "force_unlock"
	ExtensionCw4626      = "cw4626"
)

// ExecuteMsg Deposit: deposit base tokens into the vault in exchange for
// vault tokens. The base tokens must be sent in the funds field, except for
// cw20 base tokens, for which the vault pulls the tokens via an allowance and
// funds is left empty.
//
// ExecuteMsg Redeem: redeem vault tokens in exchange for base tokens. The
// vault tokens must be sent in the funds field.
//
// ExecuteMsg VaultExtension: call an execute message of one of the vault's
// enabled extensions.
type ExecuteMsg struct {
	Deposit        *Deposit             `json:"deposit,omitempty"`
	Redeem         *Redeem              `json:"redeem,omitempty"`
	VaultExtension *ExtensionExecuteMsg `json:"vault_extension,omitempty"`
}

type Deposit struct {
	// The amount of base tokens to deposit.
	Amount string `json:"amount"`
	// The recipient of the vault tokens. If not set, the caller address is
	// used instead.
	Recipient *string `json:"recipient"`
}

type Redeem struct {
	// The amount of vault tokens to redeem.
	Amount string `json:"amount"`
	// The recipient of the withdrawn base tokens. If not set, the caller
	// address is used instead.
	Recipient *string `json:"recipient"`
}

// ExtensionExecuteMsg is the set of execute messages of the standard's
// extensions. A vault only responds to the variants of the extensions it has
// enabled.
type ExtensionExecuteMsg struct {
	Lockup *lockup.ExecuteMsg `json:"lockup,omitempty"`
}

// QueryMsg VaultStandardInfo: the version of the vault standard the contract
// implements and its enabled extensions. Returns VaultStandardInfoResponse.
//
// QueryMsg Info: the vault's base token and vault token denoms. Returns
// VaultInfoResponse.
//
// QueryMsg PreviewDeposit: the amount of vault tokens that would be minted
// for depositing `amount` base tokens, at the current block. Must be as close
// to and no more than the amount a Deposit in the same transaction would
// mint, must not account for deposit limits, and must be inclusive of deposit
// fees.
//
// QueryMsg PreviewRedeem: the amount of base tokens that would be withdrawn
// for redeeming `amount` vault tokens.
//
// QueryMsg MaxDeposit: the maximum amount of base tokens that can be
// deposited for `recipient`, factoring in both global and user-specific
// limits. Zero if deposits are disabled, null if there is no limit.
//
// QueryMsg MaxRedeem: the maximum amount of vault tokens that can be redeemed
// from the owner's balance. Null if there is no limit.
//
// QueryMsg TotalAssets: the amount of assets managed by the vault,
// denominated in base tokens.
//
// QueryMsg TotalVaultTokenSupply: the total amount of vault tokens in
// circulation.
//
// QueryMsg ConvertToShares: the amount of vault tokens the vault would
// exchange for `amount` base tokens, in an ideal scenario where all
// conditions are met. Reflects the average-user's price-per-share, for
// display purposes.
//
// QueryMsg ConvertToAssets: the amount of base tokens the vault would
// exchange for `amount` vault tokens, in an ideal scenario where all
// conditions are met.
//
// QueryMsg VaultExtension: call a query of one of the vault's enabled
// extensions.
type QueryMsg struct {
	VaultStandardInfo     *VaultStandardInfo     `json:"vault_standard_info,omitempty"`
	Info                  *Info                  `json:"info,omitempty"`
	PreviewDeposit        *PreviewDeposit        `json:"preview_deposit,omitempty"`
	PreviewRedeem         *PreviewRedeem         `json:"preview_redeem,omitempty"`
	MaxDeposit            *MaxDeposit            `json:"max_deposit,omitempty"`
	MaxRedeem             *MaxRedeem             `json:"max_redeem,omitempty"`
	TotalAssets           *TotalAssets           `json:"total_assets,omitempty"`
	TotalVaultTokenSupply *TotalVaultTokenSupply `json:"total_vault_token_supply,omitempty"`
	ConvertToShares       *ConvertToShares       `json:"convert_to_shares,omitempty"`
	ConvertToAssets       *ConvertToAssets       `json:"convert_to_assets,omitempty"`
	VaultExtension        *ExtensionQueryMsg     `json:"vault_extension,omitempty"`
}

type VaultStandardInfo struct {
}

type Info struct {
}

type PreviewDeposit struct {
	Amount string `json:"amount"`
}

type PreviewRedeem struct {
	Amount string `json:"amount"`
}

type MaxDeposit struct {
	Recipient string `json:"recipient"`
}

type MaxRedeem struct {
	Owner string `json:"owner"`
}

type TotalAssets struct {
}

type TotalVaultTokenSupply struct {
}

type ConvertToShares struct {
	Amount string `json:"amount"`
}

type ConvertToAssets struct {
	Amount string `json:"amount"`
}

// ExtensionQueryMsg is the set of queries of the standard's extensions. A
// vault only responds to the variants of the extensions it has enabled.
type ExtensionQueryMsg struct {
	Lockup *lockup.QueryMsg `json:"lockup,omitempty"`
}

// VaultStandardInfoResponse is the response to the VaultStandardInfo query.
// It is intended for vault aggregators and frontends to know how to interact
// with a given vault contract.
type VaultStandardInfoResponse struct {
	// The version of the vault standard the contract implements.
	Version string `json:"version"`
	// The enabled extensions, e.g. "lockup" or "force_unlock".
	Extensions []string `json:"extensions"`
}

// VaultInfoResponse is the response to the Info query.
type VaultInfoResponse struct {
	// The token that is accepted for deposits, either a native denom or a
	// cw20 contract address.
	BaseToken string `json:"base_token"`
	// The denom of the native vault token that the vault issues.
	VaultToken string `json:"vault_token"`
}

// Amount responses of the numeric queries. Uint128 values are JSON strings.
type (
	PreviewDepositResponse        string
	PreviewRedeemResponse         string
	TotalAssetsResponse           string
	TotalVaultTokenSupplyResponse string
	ConvertToSharesResponse       string
	ConvertToAssetsResponse       string
)

// MaxDepositResponse and MaxRedeemResponse are null when the vault imposes no
// limit.
type (
	MaxDepositResponse *string
	MaxRedeemResponse  *string
)

func (m *ExecuteMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *QueryMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}
