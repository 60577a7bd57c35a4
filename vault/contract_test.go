package vault

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdktypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddr(seed byte) sdktypes.AccAddress {
	return sdktypes.AccAddress(bytes.Repeat([]byte{seed}, 20))
}

func TestVaultContractUncheckedCheck(t *testing.T) {
	addr := testAddr(1)

	contract, err := NewVaultContractUnchecked(addr.String()).Check()
	require.NoError(t, err)
	assert.Equal(t, addr, contract.Addr)
	assert.Equal(t, addr.String(), contract.Unchecked().Addr)
}

func TestVaultContractUncheckedCheckRejectsGarbage(t *testing.T) {
	_, err := NewVaultContractUnchecked("not-an-address").Check()
	assert.Error(t, err)
}

func TestDepositMsg(t *testing.T) {
	vaultAddr := testAddr(1)
	sender := testAddr(2)

	msg, err := NewVaultContract(vaultAddr).DepositMsg(sender, math.NewInt(100), "uosmo", nil)
	require.NoError(t, err)

	assert.Equal(t, sender.String(), msg.Sender)
	assert.Equal(t, vaultAddr.String(), msg.Contract)
	assert.Equal(t, "100uosmo", msg.Funds.String())
	assert.JSONEq(t, `{"deposit":{"amount":"100","recipient":null}}`, string(msg.Msg))
}

func TestDepositCW20MsgSendsNoFunds(t *testing.T) {
	recipient := testAddr(3).String()

	msg, err := NewVaultContract(testAddr(1)).DepositCW20Msg(testAddr(2), math.NewInt(100), &recipient)
	require.NoError(t, err)

	assert.True(t, msg.Funds.Empty())
	assert.JSONEq(t, `{"deposit":{"amount":"100","recipient":"`+recipient+`"}}`, string(msg.Msg))
}

func TestRedeemMsg(t *testing.T) {
	msg, err := NewVaultContract(testAddr(1)).RedeemMsg(testAddr(2), math.NewInt(50), "factory/vault/vtoken", nil)
	require.NoError(t, err)

	assert.Equal(t, "50factory/vault/vtoken", msg.Funds.String())
	assert.JSONEq(t, `{"redeem":{"amount":"50","recipient":null}}`, string(msg.Msg))
}

func TestUnlockMsgAttachesVaultTokens(t *testing.T) {
	msg, err := NewVaultContract(testAddr(1)).UnlockMsg(testAddr(2), math.NewInt(25), "factory/vault/vtoken")
	require.NoError(t, err)

	assert.Equal(t, "25factory/vault/vtoken", msg.Funds.String())
	assert.JSONEq(t, `{"vault_extension":{"lockup":{"unlock":{"amount":"25"}}}}`, string(msg.Msg))
}

func TestWithdrawUnlockedMsg(t *testing.T) {
	msg, err := NewVaultContract(testAddr(1)).WithdrawUnlockedMsg(testAddr(2), 7, nil)
	require.NoError(t, err)

	assert.True(t, msg.Funds.Empty())
	assert.JSONEq(t, `{"vault_extension":{"lockup":{"withdraw_unlocked":{"lockup_id":7,"recipient":null}}}}`, string(msg.Msg))
}

func TestForceWithdrawMsg(t *testing.T) {
	msg, err := NewVaultContract(testAddr(1)).ForceWithdrawMsg(testAddr(2), math.NewInt(10), "factory/vault/vtoken", nil)
	require.NoError(t, err)

	assert.Equal(t, "10factory/vault/vtoken", msg.Funds.String())
	assert.JSONEq(t, `{"vault_extension":{"lockup":{"force_withdraw":{"amount":"10","recipient":null}}}}`, string(msg.Msg))
}

func TestForceWithdrawUnlockingMsgFullPosition(t *testing.T) {
	msg, err := NewVaultContract(testAddr(1)).ForceWithdrawUnlockingMsg(testAddr(2), 3, nil, nil)
	require.NoError(t, err)

	assert.True(t, msg.Funds.Empty())
	assert.JSONEq(t, `{"vault_extension":{"lockup":{"force_withdraw_unlocking":{"lockup_id":3,"amount":null,"recipient":null}}}}`, string(msg.Msg))
}

func TestForceWithdrawUnlockingMsgPartial(t *testing.T) {
	amount := math.NewInt(5)

	msg, err := NewVaultContract(testAddr(1)).ForceWithdrawUnlockingMsg(testAddr(2), 3, &amount, nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{"vault_extension":{"lockup":{"force_withdraw_unlocking":{"lockup_id":3,"amount":"5","recipient":null}}}}`, string(msg.Msg))
}

func TestParseUint128(t *testing.T) {
	amount, err := parseUint128("340282366920938463463374607431768211455")
	require.NoError(t, err)
	assert.Equal(t, "340282366920938463463374607431768211455", amount.String())

	_, err = parseUint128("not a number")
	assert.Error(t, err)
}
