package cosmwasmapi

import (
	"testing"

	sdktypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
)

func TestDefaultBroadcastOptions(t *testing.T) {
	opts := DefaultBroadcastOptions()

	assert.Equal(t, 1.2, opts.GasAdjustment)
	assert.Equal(t, uint64(200_000), opts.Gas)
	assert.True(t, opts.Simulate)
	assert.True(t, opts.Funds.Empty())
}

func TestBroadcastOptionsBuilders(t *testing.T) {
	opts := DefaultBroadcastOptions().
		WithContractAddr("osmo1vaultaddr").
		WithExecuteMsg(map[string]any{"deposit": map[string]any{"amount": "100", "recipient": nil}}).
		WithFunds("100uosmo").
		WithGasPrice("0.025uosmo").
		WithGas(300_000).
		WithMemo("vault deposit").
		WithSimulate(false)

	assert.Equal(t, "osmo1vaultaddr", opts.ContractAddr)
	assert.JSONEq(t, `{"deposit":{"amount":"100","recipient":null}}`, string(opts.ExecuteMsg))
	assert.Equal(t, "100uosmo", opts.Funds.String())
	assert.Equal(t, "0.025000000000000000uosmo", opts.GasPrice.String())
	assert.Equal(t, uint64(300_000), opts.Gas)
	assert.Equal(t, "vault deposit", opts.Memo)
	assert.False(t, opts.Simulate)
}

func TestBroadcastOptionsWithCoins(t *testing.T) {
	opts := DefaultBroadcastOptions().
		WithCoins(sdktypes.NewInt64Coin("gamm/pool/1", 500))

	assert.Equal(t, "500gamm/pool/1", opts.Funds.String())
}

func TestBroadcastOptionsWithFundsPanicsOnGarbage(t *testing.T) {
	assert.Panics(t, func() {
		DefaultBroadcastOptions().WithFunds("not a coin")
	})
}
