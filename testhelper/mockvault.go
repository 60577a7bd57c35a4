// Package testhelper provides an in-memory vault implementing the vault
// standard's query semantics, so SDK and integrator tests can run against
// standard-conformant responses without a chain.
package testhelper

import (
	"encoding/json"
	"fmt"
	"sort"

	"cosmossdk.io/math"

	"github.com/mdjakovic0920/cw-vault-standard/vault"
	"github.com/mdjakovic0920/cw-vault-standard/vault/lockup"
)

// MockVault holds vault token accounting with proportional share math and
// lockup bookkeeping. The zero amounts are valid; the first deposit mints
// shares 1:1.
type MockVault struct {
	BaseToken  string
	VaultToken string
	Extensions []string

	// LockDuration is returned by the lockup duration query when the lockup
	// extension is enabled.
	LockDuration lockup.Duration

	// Height and Time (nanoseconds since epoch) stand in for the chain clock
	// when checking lockup expiration.
	Height uint64
	Time   uint64

	totalAssets  math.Int
	totalShares  math.Int
	nextLockupID uint64
	lockups      map[uint64]lockup.Lockup
}

func NewMockVault(baseToken string, vaultToken string) *MockVault {
	return &MockVault{
		BaseToken:   baseToken,
		VaultToken:  vaultToken,
		Extensions:  []string{},
		totalAssets: math.ZeroInt(),
		totalShares: math.ZeroInt(),
		lockups:     map[uint64]lockup.Lockup{},
	}
}

// EnableLockup enables the lockup extension with the given unlock duration.
func (mv *MockVault) EnableLockup(duration lockup.Duration) *MockVault {
	mv.Extensions = append(mv.Extensions, vault.ExtensionLockup, vault.ExtensionForceUnlock)
	mv.LockDuration = duration
	return mv
}

func (mv *MockVault) TotalAssets() math.Int {
	return mv.totalAssets
}

func (mv *MockVault) TotalShares() math.Int {
	return mv.totalShares
}

// ConvertToShares returns the amount of vault tokens exchanged for the given
// amount of base tokens at the current share price.
func (mv *MockVault) ConvertToShares(assets math.Int) math.Int {
	if mv.totalShares.IsZero() || mv.totalAssets.IsZero() {
		return assets
	}
	return assets.Mul(mv.totalShares).Quo(mv.totalAssets)
}

// ConvertToAssets returns the amount of base tokens exchanged for the given
// amount of vault tokens at the current share price.
func (mv *MockVault) ConvertToAssets(shares math.Int) math.Int {
	if mv.totalShares.IsZero() {
		return shares
	}
	return shares.Mul(mv.totalAssets).Quo(mv.totalShares)
}

// Deposit adds base tokens to the vault and returns the amount of vault
// tokens minted.
func (mv *MockVault) Deposit(amount math.Int) math.Int {
	shares := mv.ConvertToShares(amount)
	mv.totalAssets = mv.totalAssets.Add(amount)
	mv.totalShares = mv.totalShares.Add(shares)
	return shares
}

// Redeem burns vault tokens and returns the amount of base tokens withdrawn.
func (mv *MockVault) Redeem(shares math.Int) (math.Int, error) {
	if shares.GT(mv.totalShares) {
		return math.Int{}, fmt.Errorf("cannot redeem %s shares, only %s in circulation", shares, mv.totalShares)
	}
	assets := mv.ConvertToAssets(shares)
	mv.totalShares = mv.totalShares.Sub(shares)
	mv.totalAssets = mv.totalAssets.Sub(assets)
	return assets, nil
}

// Donate increases the vault's assets without minting shares, the way
// harvested yield does. Moves the share price off 1:1.
func (mv *MockVault) Donate(amount math.Int) {
	mv.totalAssets = mv.totalAssets.Add(amount)
}

// Unlock burns vault tokens and creates an unlocking position releasing at
// the vault's lock duration from now. Returns the lockup id.
func (mv *MockVault) Unlock(owner string, shares math.Int) (uint64, error) {
	assets, err := mv.Redeem(shares)
	if err != nil {
		return 0, err
	}

	id := mv.nextLockupID
	mv.nextLockupID++
	mv.lockups[id] = lockup.Lockup{
		Owner:     owner,
		ID:        id,
		ReleaseAt: mv.releaseAt(),
		Amount:    assets.String(),
	}
	return id, nil
}

func (mv *MockVault) releaseAt() lockup.Expiration {
	switch {
	case mv.LockDuration.Height != nil:
		height := mv.Height + *mv.LockDuration.Height
		return lockup.Expiration{AtHeight: &height}
	case mv.LockDuration.Time != nil:
		at := fmt.Sprintf("%d", mv.Time+*mv.LockDuration.Time*1_000_000_000)
		return lockup.Expiration{AtTime: &at}
	default:
		return lockup.Expiration{Never: &lockup.Never{}}
	}
}

func (mv *MockVault) expired(e lockup.Expiration) bool {
	switch {
	case e.AtHeight != nil:
		return mv.Height >= *e.AtHeight
	case e.AtTime != nil:
		var at uint64
		if _, err := fmt.Sscanf(*e.AtTime, "%d", &at); err != nil {
			return false
		}
		return mv.Time >= at
	default:
		return false
	}
}

// WithdrawUnlocked claims an unlocking position that has finished unlocking
// and returns the amount of base tokens withdrawn.
func (mv *MockVault) WithdrawUnlocked(owner string, lockupID uint64) (math.Int, error) {
	position, ok := mv.lockups[lockupID]
	if !ok {
		return math.Int{}, fmt.Errorf("lockup %d not found", lockupID)
	}
	if position.Owner != owner {
		return math.Int{}, fmt.Errorf("lockup %d is not owned by %s", lockupID, owner)
	}
	if !mv.expired(position.ReleaseAt) {
		return math.Int{}, fmt.Errorf("lockup %d has not finished unlocking", lockupID)
	}

	delete(mv.lockups, lockupID)
	return parseUint128(position.Amount)
}

// ForceWithdrawUnlocking claims an unlocking position regardless of its
// release time, in full when amount is nil.
func (mv *MockVault) ForceWithdrawUnlocking(lockupID uint64, amount *math.Int) (math.Int, error) {
	position, ok := mv.lockups[lockupID]
	if !ok {
		return math.Int{}, fmt.Errorf("lockup %d not found", lockupID)
	}

	locked, err := parseUint128(position.Amount)
	if err != nil {
		return math.Int{}, err
	}
	if amount == nil || amount.Equal(locked) {
		delete(mv.lockups, lockupID)
		return locked, nil
	}
	if amount.GT(locked) {
		return math.Int{}, fmt.Errorf("lockup %d holds %s, cannot withdraw %s", lockupID, locked, amount)
	}

	position.Amount = locked.Sub(*amount).String()
	mv.lockups[lockupID] = position
	return *amount, nil
}

// Lockups returns the unclaimed unlocking positions for the owner, sorted by
// id, honoring the start_after and limit pagination of the lockup extension.
func (mv *MockVault) Lockups(owner string, startAfter *uint64, limit *uint32) []lockup.Lockup {
	positions := make([]lockup.Lockup, 0, len(mv.lockups))
	for _, position := range mv.lockups {
		if position.Owner != owner {
			continue
		}
		if startAfter != nil && position.ID <= *startAfter {
			continue
		}
		positions = append(positions, position)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].ID < positions[j].ID })

	if limit != nil && uint32(len(positions)) > *limit {
		positions = positions[:*limit]
	}
	return positions
}

// HandleQuery dispatches a JSON encoded vault standard QueryMsg and returns
// the JSON encoded response, as an adhering contract would.
func (mv *MockVault) HandleQuery(queryBytes []byte) ([]byte, error) {
	var msg vault.QueryMsg
	if err := json.Unmarshal(queryBytes, &msg); err != nil {
		return nil, err
	}

	switch {
	case msg.VaultStandardInfo != nil:
		return json.Marshal(vault.VaultStandardInfoResponse{
			Version:    vault.Version,
			Extensions: mv.Extensions,
		})
	case msg.Info != nil:
		return json.Marshal(vault.VaultInfoResponse{
			BaseToken:  mv.BaseToken,
			VaultToken: mv.VaultToken,
		})
	case msg.PreviewDeposit != nil:
		amount, err := parseUint128(msg.PreviewDeposit.Amount)
		if err != nil {
			return nil, err
		}
		return json.Marshal(mv.ConvertToShares(amount).String())
	case msg.PreviewRedeem != nil:
		amount, err := parseUint128(msg.PreviewRedeem.Amount)
		if err != nil {
			return nil, err
		}
		return json.Marshal(mv.ConvertToAssets(amount).String())
	case msg.MaxDeposit != nil, msg.MaxRedeem != nil:
		// The mock imposes no deposit or redeem limits.
		return []byte("null"), nil
	case msg.TotalAssets != nil:
		return json.Marshal(mv.totalAssets.String())
	case msg.TotalVaultTokenSupply != nil:
		return json.Marshal(mv.totalShares.String())
	case msg.ConvertToShares != nil:
		amount, err := parseUint128(msg.ConvertToShares.Amount)
		if err != nil {
			return nil, err
		}
		return json.Marshal(mv.ConvertToShares(amount).String())
	case msg.ConvertToAssets != nil:
		amount, err := parseUint128(msg.ConvertToAssets.Amount)
		if err != nil {
			return nil, err
		}
		return json.Marshal(mv.ConvertToAssets(amount).String())
	case msg.VaultExtension != nil && msg.VaultExtension.Lockup != nil:
		return mv.handleLockupQuery(msg.VaultExtension.Lockup)
	default:
		return nil, fmt.Errorf("unsupported query: %s", queryBytes)
	}
}

func (mv *MockVault) handleLockupQuery(msg *lockup.QueryMsg) ([]byte, error) {
	switch {
	case msg.Lockups != nil:
		return json.Marshal(mv.Lockups(msg.Lockups.Owner, msg.Lockups.StartAfter, msg.Lockups.Limit))
	case msg.Lockup != nil:
		position, ok := mv.lockups[msg.Lockup.LockupID]
		if !ok {
			return nil, fmt.Errorf("lockup %d not found", msg.Lockup.LockupID)
		}
		return json.Marshal(position)
	case msg.LockupDuration != nil:
		return json.Marshal(mv.LockDuration)
	default:
		return nil, fmt.Errorf("unsupported lockup query")
	}
}

func parseUint128(s string) (math.Int, error) {
	amount, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid Uint128: %q", s)
	}
	return amount, nil
}
