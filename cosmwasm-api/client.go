// Package cosmwasmapi is a thin client for querying and executing CosmWasm
// contracts through a cosmos-sdk client.Context.
package cosmwasmapi

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	clienttx "github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/std"
	sdktypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	authtx "github.com/cosmos/cosmos-sdk/x/auth/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger sets the logger used for transaction progress logging. The
// default is a no-op logger.
func SetLogger(l *zap.Logger) {
	logger = l
}

// NewClientCtx creates a client.Context connected to the given CometBFT RPC
// node. The context has no keyring; attach one before executing transactions.
func NewClientCtx(nodeUri string, chainID string) client.Context {
	rpcClient, err := rpchttp.New(nodeUri, "/websocket")
	if err != nil {
		panic(err)
	}

	interfaceRegistry := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(interfaceRegistry)
	authtypes.RegisterInterfaces(interfaceRegistry)
	wasmtypes.RegisterInterfaces(interfaceRegistry)

	cdc := codec.NewProtoCodec(interfaceRegistry)

	return client.Context{}.
		WithClient(rpcClient).
		WithChainID(chainID).
		WithCodec(cdc).
		WithInterfaceRegistry(interfaceRegistry).
		WithTxConfig(authtx.NewTxConfig(cdc, authtx.DefaultSignModes)).
		WithLegacyAmino(codec.NewLegacyAmino()).
		WithAccountRetriever(authtypes.AccountRetriever{}).
		WithBroadcastMode(flags.BroadcastSync)
}

// Query performs a smart contract state query on the contract at addr and
// unmarshals the response into Response.
func Query[Response interface{}](
	clientCtx client.Context, ctx context.Context, addr string, msg interface{},
) (Response, error) {
	var result Response
	queryClient := wasmtypes.NewQueryClient(clientCtx)

	queryBytes, err := json.Marshal(msg)
	if err != nil {
		return result, err
	}

	queryMsg := &wasmtypes.QuerySmartContractStateRequest{
		Address:   addr,
		QueryData: queryBytes,
	}

	response, err := queryClient.SmartContractState(ctx, queryMsg)
	if err != nil {
		return result, err
	}

	err = json.Unmarshal(response.Data, &result)
	return result, err
}

// Execute signs and broadcasts a MsgExecuteContract built from opts, then
// waits for the transaction to be included in a block. The clientCtx must
// have a keyring with the key for sender set as the from name.
func Execute(
	clientCtx client.Context, ctx context.Context, sender string, opts BroadcastOptions,
) (*coretypes.ResultTx, error) {
	msg := &wasmtypes.MsgExecuteContract{
		Sender:   sender,
		Contract: opts.ContractAddr,
		Msg:      opts.ExecuteMsg,
		Funds:    opts.Funds,
	}

	fromAddr, err := sdktypes.AccAddressFromBech32(sender)
	if err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}

	accNum, accSeq, err := clientCtx.AccountRetriever.GetAccountNumberSequence(clientCtx, fromAddr)
	if err != nil {
		return nil, err
	}

	txf := clienttx.Factory{}.
		WithChainID(clientCtx.ChainID).
		WithKeybase(clientCtx.Keyring).
		WithTxConfig(clientCtx.TxConfig).
		WithAccountRetriever(clientCtx.AccountRetriever).
		WithAccountNumber(accNum).
		WithSequence(accSeq).
		WithGas(opts.Gas).
		WithGasAdjustment(opts.GasAdjustment).
		WithGasPrices(opts.GasPrice.String()).
		WithMemo(opts.Memo).
		WithSignMode(signing.SignMode_SIGN_MODE_DIRECT)

	if opts.Simulate {
		_, adjusted, err := clienttx.CalculateGas(clientCtx, txf, msg)
		if err != nil {
			return nil, fmt.Errorf("gas simulation failed: %w", err)
		}
		txf = txf.WithGas(adjusted)
		logger.Debug("simulated contract execution",
			zap.String("contract", opts.ContractAddr),
			zap.Uint64("gas", adjusted),
		)
	}

	builder, err := txf.BuildUnsignedTx(msg)
	if err != nil {
		return nil, err
	}

	if err := clienttx.Sign(ctx, txf, clientCtx.FromName, builder, true); err != nil {
		return nil, err
	}

	txBytes, err := clientCtx.TxConfig.TxEncoder()(builder.GetTx())
	if err != nil {
		return nil, err
	}

	res, err := clientCtx.BroadcastTxSync(txBytes)
	if err != nil {
		return nil, err
	}
	if res.Code != 0 {
		return nil, fmt.Errorf("broadcast failed with code %d: %s", res.Code, res.RawLog)
	}

	hash, err := hex.DecodeString(res.TxHash)
	if err != nil {
		return nil, err
	}
	return waitForTx(clientCtx, ctx, hash)
}

// waitForTx polls the node until the transaction is included in a block or
// ctx expires.
func waitForTx(clientCtx client.Context, ctx context.Context, hash []byte) (*coretypes.ResultTx, error) {
	for {
		resultTx, err := clientCtx.Client.Tx(ctx, hash, false)
		if err == nil {
			return resultTx, nil
		}

		logger.Debug("tx not yet included in a block",
			zap.String("hash", hex.EncodeToString(hash)),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
		}
	}
}
