// Package sdk builds the cosmos-sdk client context for the CLI from viper
// config.
package sdk

import (
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/spf13/viper"

	cosmwasmapi "github.com/mdjakovic0920/cw-vault-standard/cosmwasm-api"
)

func NewClientCtx() client.Context {
	return cosmwasmapi.NewClientCtx(
		viper.GetString("node"),
		viper.GetString("chain-id"),
	)
}

// WithKeyring attaches the configured keyring to the context and sets the
// from key as signer.
func WithKeyring(ctx client.Context) client.Context {
	keyringBackend := viper.GetString("keyring-backend")

	kr, err := keyring.New("vault-cli", keyringBackend, ctx.KeyringDir, ctx.Input, ctx.Codec, ctx.KeyringOptions...)
	if err != nil {
		panic(err)
	}

	from := viper.GetString("from")
	record, err := kr.Key(from)
	if err != nil {
		panic(err)
	}
	fromAddr, err := record.GetAddress()
	if err != nil {
		panic(err)
	}

	return ctx.WithKeyring(kr).WithFromName(from).WithFromAddress(fromAddr)
}

func DefaultBroadcastOptions() cosmwasmapi.BroadcastOptions {
	return cosmwasmapi.DefaultBroadcastOptions()
}
