package lockup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteMsgUnlock(t *testing.T) {
	msg := ExecuteMsg{
		Unlock: &Unlock{Amount: "1000"},
	}

	msgBytes, err := msg.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, `{"unlock":{"amount":"1000"}}`, string(msgBytes))
}

func TestExecuteMsgWithdrawUnlocked(t *testing.T) {
	recipient := "osmo1recipient"
	msg := ExecuteMsg{
		WithdrawUnlocked: &WithdrawUnlocked{
			LockupID:  42,
			Recipient: &recipient,
		},
	}

	msgBytes, err := msg.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, `{"withdraw_unlocked":{"lockup_id":42,"recipient":"osmo1recipient"}}`, string(msgBytes))
}

func TestExecuteMsgForceWithdrawUnlocking(t *testing.T) {
	amount := "500"
	msg := ExecuteMsg{
		ForceWithdrawUnlocking: &ForceWithdrawUnlocking{
			LockupID: 7,
			Amount:   &amount,
		},
	}

	msgBytes, err := msg.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, `{"force_withdraw_unlocking":{"lockup_id":7,"amount":"500","recipient":null}}`, string(msgBytes))
}

func TestQueryMsgLockupDuration(t *testing.T) {
	msg := QueryMsg{LockupDuration: &LockupDuration{}}

	msgBytes, err := msg.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, `{"lockup_duration":{}}`, string(msgBytes))
}

func TestLockupRoundTrip(t *testing.T) {
	data := `{"owner":"osmo1owner","id":3,"release_at":{"at_time":"1700000000000000000"},"amount":"250"}`

	var position Lockup
	require.NoError(t, json.Unmarshal([]byte(data), &position))

	assert.Equal(t, "osmo1owner", position.Owner)
	assert.Equal(t, uint64(3), position.ID)
	require.NotNil(t, position.ReleaseAt.AtTime)
	assert.Equal(t, "1700000000000000000", *position.ReleaseAt.AtTime)
	assert.Equal(t, "250", position.Amount)
}

func TestDurationVariants(t *testing.T) {
	var duration Duration
	require.NoError(t, json.Unmarshal([]byte(`{"time":1209600}`), &duration))
	require.NotNil(t, duration.Time)
	assert.Equal(t, uint64(1209600), *duration.Time)
	assert.Nil(t, duration.Height)
}

func TestUnlockingPositionEventConstants(t *testing.T) {
	assert.Equal(t, "unlocking_position_created", UnlockingPositionCreatedEventType)
	assert.Equal(t, "lockup_id", UnlockingPositionAttrKey)
}
