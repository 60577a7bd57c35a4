package vault

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdjakovic0920/cw-vault-standard/vault/lockup"
)

func TestExecuteMsgDeposit(t *testing.T) {
	recipient := "osmo1recipient"
	msg := ExecuteMsg{
		Deposit: &Deposit{
			Amount:    "1000000",
			Recipient: &recipient,
		},
	}

	msgBytes, err := msg.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, `{"deposit":{"amount":"1000000","recipient":"osmo1recipient"}}`, string(msgBytes))
}

func TestExecuteMsgDepositWithoutRecipient(t *testing.T) {
	msg := ExecuteMsg{
		Deposit: &Deposit{Amount: "500"},
	}

	msgBytes, err := msg.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, `{"deposit":{"amount":"500","recipient":null}}`, string(msgBytes))
}

func TestExecuteMsgRedeem(t *testing.T) {
	msg := ExecuteMsg{
		Redeem: &Redeem{Amount: "42"},
	}

	msgBytes, err := msg.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, `{"redeem":{"amount":"42","recipient":null}}`, string(msgBytes))
}

func TestExecuteMsgLockupExtension(t *testing.T) {
	msg := ExecuteMsg{
		VaultExtension: &ExtensionExecuteMsg{
			Lockup: &lockup.ExecuteMsg{
				Unlock: &lockup.Unlock{Amount: "100"},
			},
		},
	}

	msgBytes, err := msg.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, `{"vault_extension":{"lockup":{"unlock":{"amount":"100"}}}}`, string(msgBytes))
}

func TestQueryMsgVariants(t *testing.T) {
	tests := []struct {
		name string
		msg  QueryMsg
		want string
	}{
		{"vault standard info", QueryMsg{VaultStandardInfo: &VaultStandardInfo{}}, `{"vault_standard_info":{}}`},
		{"info", QueryMsg{Info: &Info{}}, `{"info":{}}`},
		{"preview deposit", QueryMsg{PreviewDeposit: &PreviewDeposit{Amount: "100"}}, `{"preview_deposit":{"amount":"100"}}`},
		{"preview redeem", QueryMsg{PreviewRedeem: &PreviewRedeem{Amount: "100"}}, `{"preview_redeem":{"amount":"100"}}`},
		{"max deposit", QueryMsg{MaxDeposit: &MaxDeposit{Recipient: "osmo1abc"}}, `{"max_deposit":{"recipient":"osmo1abc"}}`},
		{"max redeem", QueryMsg{MaxRedeem: &MaxRedeem{Owner: "osmo1abc"}}, `{"max_redeem":{"owner":"osmo1abc"}}`},
		{"total assets", QueryMsg{TotalAssets: &TotalAssets{}}, `{"total_assets":{}}`},
		{"total vault token supply", QueryMsg{TotalVaultTokenSupply: &TotalVaultTokenSupply{}}, `{"total_vault_token_supply":{}}`},
		{"convert to shares", QueryMsg{ConvertToShares: &ConvertToShares{Amount: "7"}}, `{"convert_to_shares":{"amount":"7"}}`},
		{"convert to assets", QueryMsg{ConvertToAssets: &ConvertToAssets{Amount: "7"}}, `{"convert_to_assets":{"amount":"7"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgBytes, err := tt.msg.Marshal()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(msgBytes))
		})
	}
}

func TestQueryMsgLockupExtension(t *testing.T) {
	startAfter := uint64(5)
	limit := uint32(10)
	msg := QueryMsg{
		VaultExtension: &ExtensionQueryMsg{
			Lockup: &lockup.QueryMsg{
				Lockups: &lockup.Lockups{
					Owner:      "osmo1owner",
					StartAfter: &startAfter,
					Limit:      &limit,
				},
			},
		},
	}

	msgBytes, err := msg.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, `{"vault_extension":{"lockup":{"lockups":{"owner":"osmo1owner","start_after":5,"limit":10}}}}`, string(msgBytes))
}

func TestVaultStandardInfoResponse(t *testing.T) {
	data := `{"version":"0.4.0","extensions":["lockup","force_unlock"]}`

	var response VaultStandardInfoResponse
	require.NoError(t, json.Unmarshal([]byte(data), &response))

	assert.Equal(t, Version, response.Version)
	assert.Equal(t, []string{ExtensionLockup, ExtensionForceUnlock}, response.Extensions)
}

func TestVaultInfoResponse(t *testing.T) {
	data := `{"base_token":"uosmo","vault_token":"factory/osmo1vault/vtoken"}`

	var response VaultInfoResponse
	require.NoError(t, json.Unmarshal([]byte(data), &response))

	assert.Equal(t, "uosmo", response.BaseToken)
	assert.Equal(t, "factory/osmo1vault/vtoken", response.VaultToken)
}
