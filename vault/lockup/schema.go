// Package lockup contains the message types of the vault standard's lockup
// extension, for vaults whose positions unlock over time instead of being
// redeemable instantly.
package lockup

import "encoding/json"

// UnlockingPositionCreatedEventType is the event type emitted on Unlock.
const UnlockingPositionCreatedEventType = "unlocking_position_created"

// UnlockingPositionAttrKey is the attribute key on the event emitted on
// Unlock. The value is the u64 lockup id of the created unlocking position.
const UnlockingPositionAttrKey = "lockup_id"

// ExecuteMsg Unlock: initiate unlocking a locked position held by the vault.
// The caller must pass the native vault tokens in the funds field. Emits an
// event of type `unlocking_position_created` carrying the lockup id, which is
// also returned binary-encoded in the response data field.
//
// ExecuteMsg WithdrawUnlocked: withdraw from an unlocking position that has
// finished unlocking.
//
// ExecuteMsg ForceWithdraw: callable by whitelisted addresses to bypass the
// lockup and immediately return the underlying assets, e.g. on liquidation.
// The caller must pass the native vault tokens in the funds field.
//
// ExecuteMsg ForceWithdrawUnlocking: force withdraw from a position that is
// already unlocking.
type ExecuteMsg struct {
	Unlock                 *Unlock                 `json:"unlock,omitempty"`
	WithdrawUnlocked       *WithdrawUnlocked       `json:"withdraw_unlocked,omitempty"`
	ForceWithdraw          *ForceWithdraw          `json:"force_withdraw,omitempty"`
	ForceWithdrawUnlocking *ForceWithdrawUnlocking `json:"force_withdraw_unlocking,omitempty"`
}

type Unlock struct {
	// The amount of vault tokens to unlock.
	Amount string `json:"amount"`
}

type WithdrawUnlocked struct {
	// The ID of the expired lockup to withdraw from.
	LockupID uint64 `json:"lockup_id"`
	// Which address should receive the withdrawn base tokens. If not set, the
	// caller address is used instead.
	Recipient *string `json:"recipient"`
}

type ForceWithdraw struct {
	// The amount of vault tokens to force unlock.
	Amount string `json:"amount"`
	// The address which should receive the withdrawn assets. If not set, the
	// caller address is used instead.
	Recipient *string `json:"recipient"`
}

type ForceWithdrawUnlocking struct {
	// The ID of the unlocking position from which to force withdraw.
	LockupID uint64 `json:"lockup_id"`
	// Amount of the underlying asset to force withdraw. If not set, the
	// entire position is force withdrawn.
	Amount *string `json:"amount"`
	// The address which should receive the withdrawn assets. If not set, the
	// assets are sent to the caller.
	Recipient *string `json:"recipient"`
}

// QueryMsg Lockups: all currently unclaimed unlocking positions for an owner.
// Returns []Lockup.
//
// QueryMsg Lockup: info about a specific unlocking position. Returns Lockup.
//
// QueryMsg LockupDuration: the duration of the vault's lockup. Returns
// Duration.
type QueryMsg struct {
	Lockups        *Lockups        `json:"lockups,omitempty"`
	Lockup         *LockupByID     `json:"lockup,omitempty"`
	LockupDuration *LockupDuration `json:"lockup_duration,omitempty"`
}

type Lockups struct {
	// The address of the owner of the lockups.
	Owner string `json:"owner"`
	// Return results only after this lockup id.
	StartAfter *uint64 `json:"start_after"`
	// Max amount of results to return.
	Limit *uint32 `json:"limit"`
}

type LockupByID struct {
	LockupID uint64 `json:"lockup_id"`
}

type LockupDuration struct {
}

// Lockup is an unlocking position created by a call to Unlock.
type Lockup struct {
	Owner     string     `json:"owner"`
	ID        uint64     `json:"id"`
	ReleaseAt Expiration `json:"release_at"`
	Amount    string     `json:"amount"`
}

// Duration is a time delta, either a number of blocks or a number of seconds.
type Duration struct {
	Height *uint64 `json:"height,omitempty"`
	Time   *uint64 `json:"time,omitempty"`
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

func (m *ExecuteMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *QueryMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}
