package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdFlags(t *testing.T) {
	rootCmd := RootCmd()

	for _, flag := range []string{"node", "chain-id", "keyring-backend", "from", "contract", "config", "verbose"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "missing persistent flag %q", flag)
	}
}

func TestVaultCommandTree(t *testing.T) {
	rootCmd := RootCmd()

	vaultCmd, _, err := rootCmd.Find([]string{"vault"})
	require.NoError(t, err)

	queries := map[string]bool{}
	executes := map[string]bool{}
	for _, sub := range vaultCmd.Commands() {
		var target map[string]bool
		switch sub.Name() {
		case "query":
			target = queries
		case "execute":
			target = executes
		default:
			continue
		}
		for _, leaf := range sub.Commands() {
			target[leaf.Name()] = true
		}
	}

	for _, name := range []string{
		"standard-info", "info", "preview-deposit", "preview-redeem",
		"max-deposit", "max-redeem", "total-assets", "total-supply",
		"convert-to-shares", "convert-to-assets",
		"lockups", "lockup", "lockup-duration",
	} {
		assert.True(t, queries[name], "missing query command %q", name)
	}

	for _, name := range []string{
		"deposit", "redeem", "unlock", "withdraw-unlocked", "force-withdraw",
	} {
		assert.True(t, executes[name], "missing execute command %q", name)
	}
}
