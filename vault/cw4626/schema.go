// Package cw4626 contains the message types of the CW4626 tokenized vault
// extension. A CW4626 vault is itself a CW20 token contract, so its message
// surface is the CW20 surface merged with the vault standard surface.
package cw4626

import (
	"encoding/json"

	"github.com/mdjakovic0920/cw-vault-standard/vault"
)

// Binary is a base64 encoded byte string.
type Binary string

// ExecuteMsg merges the standard CW20 execute messages with the vault
// standard's. Transfer, Send, the allowance messages, and the marketing
// messages behave exactly as on a cw20-base contract. Deposit and Redeem
// behave as in the vault standard, except that vault tokens are cw20 balances
// rather than native coins, so Redeem takes no funds.
type ExecuteMsg struct {
	Transfer          *Transfer                  `json:"transfer,omitempty"`
	Send              *Send                      `json:"send,omitempty"`
	IncreaseAllowance *IncreaseAllowance         `json:"increase_allowance,omitempty"`
	DecreaseAllowance *DecreaseAllowance         `json:"decrease_allowance,omitempty"`
	TransferFrom      *TransferFrom              `json:"transfer_from,omitempty"`
	SendFrom          *SendFrom                  `json:"send_from,omitempty"`
	UpdateMarketing   *UpdateMarketing           `json:"update_marketing,omitempty"`
	UploadLogo        *Logo                      `json:"upload_logo,omitempty"`
	Deposit           *vault.Deposit             `json:"deposit,omitempty"`
	Redeem            *vault.Redeem              `json:"redeem,omitempty"`
	Callback          json.RawMessage            `json:"callback,omitempty"`
	VaultExtension    *vault.ExtensionExecuteMsg `json:"vault_extension,omitempty"`
}

// Transfer is a base message to move tokens to another account without
// triggering actions.
type Transfer struct {
	Amount    string `json:"amount"`
	Recipient string `json:"recipient"`
}

// Send is a base message to transfer tokens to a contract and trigger an
// action on the receiving contract.
type Send struct {
	Amount   string `json:"amount"`
	Contract string `json:"contract"`
	Msg      Binary `json:"msg"`
}

// Only with "approval" extension. Allows spender to access an additional
// amount of tokens from the owner's account. If expires is set, overwrites
// the current allowance expiration with this one.
type IncreaseAllowance struct {
	Amount  string      `json:"amount"`
	Expires *Expiration `json:"expires"`
	Spender string      `json:"spender"`
}

// Only with "approval" extension. Lowers the spender's access of tokens from
// the owner's account by amount.
type DecreaseAllowance struct {
	Amount  string      `json:"amount"`
	Expires *Expiration `json:"expires"`
	Spender string      `json:"spender"`
}

// Only with "approval" extension. Transfers amount tokens from owner ->
// recipient if the sender has sufficient pre-approval.
type TransferFrom struct {
	Amount    string `json:"amount"`
	Owner     string `json:"owner"`
	Recipient string `json:"recipient"`
}

// Only with "approval" extension. Sends amount tokens from owner -> contract
// if the sender has sufficient pre-approval.
type SendFrom struct {
	Amount   string `json:"amount"`
	Contract string `json:"contract"`
	Msg      Binary `json:"msg"`
	Owner    string `json:"owner"`
}

// Only with the "marketing" extension. If authorized, updates marketing
// metadata. Leaving a field unset leaves it unchanged, setting it to ""
// clears it on contract storage.
type UpdateMarketing struct {
	// A longer description of the token and its utility.
	Description *string `json:"description"`
	// The address (if any) that can update this data structure.
	Marketing *string `json:"marketing"`
	// A URL pointing to the project behind this token.
	Project *string `json:"project"`
}

// A reference to an externally hosted logo, or logo content stored on the
// blockchain.
type Logo struct {
	URL      *string       `json:"url,omitempty"`
	Embedded *EmbeddedLogo `json:"embedded,omitempty"`
}

// EmbeddedLogo stores the logo on the blockchain, as an SVG or PNG file of at
// most 5KB.
type EmbeddedLogo struct {
	SVG *Binary `json:"svg,omitempty"`
	PNG *Binary `json:"png,omitempty"`
}

// AtHeight will expire when `env.block.height` >= height
//
// AtTime will expire when `env.block.time` >= time, in nanoseconds since
// epoch
//
// Never will never expire. Used to express the empty variant
type Expiration struct {
	AtHeight *uint64 `json:"at_height,omitempty"`
	AtTime   *string `json:"at_time,omitempty"`
	Never    *Never  `json:"never,omitempty"`
}

type Never struct {
}

// QueryMsg merges the standard CW20 queries with the vault standard's. The
// vault queries behave exactly as in the vault standard; TotalVaultTokenSupply
// equals the cw20 total supply.
type QueryMsg struct {
	Balance               *Balance                     `json:"balance,omitempty"`
	TokenInfo             *TokenInfo                   `json:"token_info,omitempty"`
	Allowance             *Allowance                   `json:"allowance,omitempty"`
	Minter                *Minter                      `json:"minter,omitempty"`
	MarketingInfo         *MarketingInfo               `json:"marketing_info,omitempty"`
	DownloadLogo          *DownloadLogo                `json:"download_logo,omitempty"`
	AllAllowances         *AllAllowances               `json:"all_allowances,omitempty"`
	AllAccounts           *AllAccounts                 `json:"all_accounts,omitempty"`
	VaultStandardInfo     *vault.VaultStandardInfo     `json:"vault_standard_info,omitempty"`
	Info                  *vault.Info                  `json:"info,omitempty"`
	PreviewDeposit        *vault.PreviewDeposit        `json:"preview_deposit,omitempty"`
	PreviewRedeem         *vault.PreviewRedeem         `json:"preview_redeem,omitempty"`
	MaxDeposit            *vault.MaxDeposit            `json:"max_deposit,omitempty"`
	MaxRedeem             *vault.MaxRedeem             `json:"max_redeem,omitempty"`
	TotalAssets           *vault.TotalAssets           `json:"total_assets,omitempty"`
	TotalVaultTokenSupply *vault.TotalVaultTokenSupply `json:"total_vault_token_supply,omitempty"`
	ConvertToShares       *vault.ConvertToShares       `json:"convert_to_shares,omitempty"`
	ConvertToAssets       *vault.ConvertToAssets       `json:"convert_to_assets,omitempty"`
	VaultExtension        *vault.ExtensionQueryMsg     `json:"vault_extension,omitempty"`
}

// Returns the current balance of the given address, 0 if unset.
type Balance struct {
	Address string `json:"address"`
}

// Returns metadata on the contract: name, decimals, supply, etc.
type TokenInfo struct {
}

// Only with "allowance" extension. Returns how much spender can use from
// owner account, 0 if unset.
type Allowance struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
}

// Only with "mintable" extension. Returns who can mint and the hard cap on
// maximum tokens after minting.
type Minter struct {
}

// Only with "marketing" extension. Returns more metadata on the contract to
// display in the client: description, logo, project url, etc.
type MarketingInfo struct {
}

// Only with "marketing" extension. Downloads the embedded logo data, if
// stored on chain. Errors if no logo data is stored for this contract.
type DownloadLogo struct {
}

// Only with "enumerable" extension (and "allowances"). Returns all allowances
// this owner has approved. Supports pagination.
type AllAllowances struct {
	Owner      string  `json:"owner"`
	StartAfter *string `json:"start_after"`
	Limit      *uint32 `json:"limit"`
}

// Only with "enumerable" extension. Returns all accounts that have balances.
// Supports pagination.
type AllAccounts struct {
	StartAfter *string `json:"start_after"`
	Limit      *uint32 `json:"limit"`
}

type BalanceResponse struct {
	Balance string `json:"balance"`
}

type TokenInfoResponse struct {
	Decimals    int64  `json:"decimals"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	TotalSupply string `json:"total_supply"`
}

type AllowanceResponse struct {
	Allowance string     `json:"allowance"`
	Expires   Expiration `json:"expires"`
}

type MinterResponse struct {
	// Hard cap on total supply that can be achieved by minting. If unset,
	// there is no cap.
	Cap    *string `json:"cap"`
	Minter string  `json:"minter"`
}

type MarketingInfoResponse struct {
	Description *string `json:"description"`
	Logo        *Logo   `json:"logo"`
	Marketing   *string `json:"marketing"`
	Project     *string `json:"project"`
}

type DownloadLogoResponse struct {
	Data     Binary `json:"data"`
	MimeType string `json:"mime_type"`
}

type AllowanceInfo struct {
	Allowance string     `json:"allowance"`
	Expires   Expiration `json:"expires"`
	Spender   string     `json:"spender"`
}

type AllAllowancesResponse struct {
	Allowances []AllowanceInfo `json:"allowances"`
}

type AllAccountsResponse struct {
	Accounts []string `json:"accounts"`
}

func (m *ExecuteMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *QueryMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}
