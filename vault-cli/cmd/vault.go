package cmd

import (
	"context"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	sdktypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mdjakovic0920/cw-vault-standard/vault"
	"github.com/mdjakovic0920/cw-vault-standard/vault-cli/sdk"
	"github.com/mdjakovic0920/cw-vault-standard/vault/lockup"
)

func VaultCommand() *cobra.Command {
	command := &cobra.Command{
		Use: "vault",
	}

	command.AddCommand(vaultExecute())
	command.AddCommand(vaultQuery())
	return command
}

func vaultContract() vault.VaultContract {
	contract, err := vault.NewVaultContractUnchecked(viper.GetString("contract")).Check()
	if err != nil {
		panic(err)
	}
	return contract
}

func parseAmount(s string) math.Int {
	amount, ok := math.NewIntFromString(s)
	if !ok {
		panic(fmt.Sprintf("invalid amount: %q", s))
	}
	return amount
}

func parseLockupID(s string) uint64 {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("invalid lockup id: %q", s))
	}
	return id
}

// recipientFlag returns the --recipient flag value, nil when unset, so the
// contract defaults to the caller address.
func recipientFlag(cmd *cobra.Command) *string {
	recipient, err := cmd.Flags().GetString("recipient")
	if err != nil {
		panic(err)
	}
	if recipient == "" {
		return nil
	}
	return &recipient
}

func executeVault(contract vault.VaultContract, msg *vault.ExecuteMsg, funds sdktypes.Coins) {
	clientCtx := sdk.WithKeyring(sdk.NewClientCtx())

	response, err := contract.Execute(
		clientCtx,
		context.Background(),
		msg,
		funds,
		sdk.DefaultBroadcastOptions(),
	)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Transaction hash: %s\n", response.Hash.String())
}

func vaultExecute() *cobra.Command {
	command := &cobra.Command{
		Use: "execute",
	}

	deposit := &cobra.Command{
		Use:   "deposit <amount>",
		Short: "To deposit base tokens into the vault in exchange for vault tokens.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			amount := parseAmount(args[0])
			contract := vaultContract()

			msg := &vault.ExecuteMsg{
				Deposit: &vault.Deposit{Amount: amount.String(), Recipient: recipientFlag(cmd)},
			}

			cw20, err := cmd.Flags().GetBool("cw20")
			if err != nil {
				panic(err)
			}

			funds := sdktypes.Coins{}
			if !cw20 {
				info, err := contract.QueryInfo(sdk.NewClientCtx(), context.Background())
				if err != nil {
					panic(err)
				}
				funds = sdktypes.NewCoins(sdktypes.NewCoin(info.BaseToken, amount))
			}

			executeVault(contract, msg, funds)
		},
	}
	deposit.Flags().String("recipient", "", "Recipient of the vault tokens, defaults to the caller")
	deposit.Flags().Bool("cw20", false, "The base token is a cw20 token pulled via allowance, send no funds")
	command.AddCommand(deposit)

	redeem := &cobra.Command{
		Use:   "redeem <amount>",
		Short: "To redeem vault tokens in exchange for base tokens.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			amount := parseAmount(args[0])
			contract := vaultContract()

			info, err := contract.QueryInfo(sdk.NewClientCtx(), context.Background())
			if err != nil {
				panic(err)
			}

			msg := &vault.ExecuteMsg{
				Redeem: &vault.Redeem{Amount: amount.String(), Recipient: recipientFlag(cmd)},
			}

			executeVault(contract, msg, sdktypes.NewCoins(sdktypes.NewCoin(info.VaultToken, amount)))
		},
	}
	redeem.Flags().String("recipient", "", "Recipient of the base tokens, defaults to the caller")
	command.AddCommand(redeem)

	unlock := &cobra.Command{
		Use:   "unlock <amount>",
		Short: "To initiate unlocking a locked position, for vaults with the lockup extension.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			amount := parseAmount(args[0])
			contract := vaultContract()

			info, err := contract.QueryInfo(sdk.NewClientCtx(), context.Background())
			if err != nil {
				panic(err)
			}

			msg := &vault.ExecuteMsg{
				VaultExtension: &vault.ExtensionExecuteMsg{
					Lockup: &lockup.ExecuteMsg{
						Unlock: &lockup.Unlock{Amount: amount.String()},
					},
				},
			}

			executeVault(contract, msg, sdktypes.NewCoins(sdktypes.NewCoin(info.VaultToken, amount)))
		},
	}
	command.AddCommand(unlock)

	withdrawUnlocked := &cobra.Command{
		Use:   "withdraw-unlocked <lockup-id>",
		Short: "To withdraw from an unlocking position that has finished unlocking.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			contract := vaultContract()

			msg := &vault.ExecuteMsg{
				VaultExtension: &vault.ExtensionExecuteMsg{
					Lockup: &lockup.ExecuteMsg{
						WithdrawUnlocked: &lockup.WithdrawUnlocked{
							LockupID:  parseLockupID(args[0]),
							Recipient: recipientFlag(cmd),
						},
					},
				},
			}

			executeVault(contract, msg, sdktypes.Coins{})
		},
	}
	withdrawUnlocked.Flags().String("recipient", "", "Recipient of the base tokens, defaults to the caller")
	command.AddCommand(withdrawUnlocked)

	forceWithdraw := &cobra.Command{
		Use:   "force-withdraw <amount>",
		Short: "To bypass the lockup and immediately withdraw, for whitelisted addresses.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			amount := parseAmount(args[0])
			contract := vaultContract()

			info, err := contract.QueryInfo(sdk.NewClientCtx(), context.Background())
			if err != nil {
				panic(err)
			}

			msg := &vault.ExecuteMsg{
				VaultExtension: &vault.ExtensionExecuteMsg{
					Lockup: &lockup.ExecuteMsg{
						ForceWithdraw: &lockup.ForceWithdraw{
							Amount:    amount.String(),
							Recipient: recipientFlag(cmd),
						},
					},
				},
			}

			executeVault(contract, msg, sdktypes.NewCoins(sdktypes.NewCoin(info.VaultToken, amount)))
		},
	}
	forceWithdraw.Flags().String("recipient", "", "Recipient of the base tokens, defaults to the caller")
	command.AddCommand(forceWithdraw)

	return command
}

func vaultQuery() *cobra.Command {
	command := &cobra.Command{
		Use: "query",
	}

	command.AddCommand(&cobra.Command{
		Use:   "standard-info",
		Short: "To query the vault standard version the contract implements and its enabled extensions.",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			response, err := vaultContract().QueryVaultStandardInfo(sdk.NewClientCtx(), context.Background())
			if err != nil {
				panic(err)
			}
			fmt.Printf("Version: %s\nExtensions: %v\n", response.Version, response.Extensions)
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "To query the vault's base token and vault token.",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			response, err := vaultContract().QueryInfo(sdk.NewClientCtx(), context.Background())
			if err != nil {
				panic(err)
			}
			fmt.Printf("Base token: %s\nVault token: %s\n", response.BaseToken, response.VaultToken)
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "preview-deposit <amount>",
		Short: "To query the amount of vault tokens minted for depositing the given base tokens.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			shares, err := vaultContract().QueryPreviewDeposit(sdk.NewClientCtx(), context.Background(), parseAmount(args[0]))
			if err != nil {
				panic(err)
			}
			fmt.Printf("Vault tokens: %s\n", shares)
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "preview-redeem <amount>",
		Short: "To query the amount of base tokens withdrawn for redeeming the given vault tokens.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			assets, err := vaultContract().QueryPreviewRedeem(sdk.NewClientCtx(), context.Background(), parseAmount(args[0]))
			if err != nil {
				panic(err)
			}
			fmt.Printf("Base tokens: %s\n", assets)
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "max-deposit <recipient>",
		Short: "To query the maximum amount of base tokens that can be deposited for the recipient.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			max, err := vaultContract().QueryMaxDeposit(sdk.NewClientCtx(), context.Background(), args[0])
			if err != nil {
				panic(err)
			}
			if max == nil {
				fmt.Println("Max deposit: unlimited")
				return
			}
			fmt.Printf("Max deposit: %s\n", max)
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "max-redeem <owner>",
		Short: "To query the maximum amount of vault tokens the owner can redeem.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			max, err := vaultContract().QueryMaxRedeem(sdk.NewClientCtx(), context.Background(), args[0])
			if err != nil {
				panic(err)
			}
			if max == nil {
				fmt.Println("Max redeem: unlimited")
				return
			}
			fmt.Printf("Max redeem: %s\n", max)
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "total-assets",
		Short: "To query the total assets held in the vault, denominated in base tokens.",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			total, err := vaultContract().QueryTotalAssets(sdk.NewClientCtx(), context.Background())
			if err != nil {
				panic(err)
			}
			fmt.Printf("Total assets: %s\n", total)
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "total-supply",
		Short: "To query the total amount of vault tokens in circulation.",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			total, err := vaultContract().QueryTotalVaultTokenSupply(sdk.NewClientCtx(), context.Background())
			if err != nil {
				panic(err)
			}
			fmt.Printf("Total vault token supply: %s\n", total)
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "convert-to-shares <amount>",
		Short: "To query the amount of vault tokens exchanged for the given base tokens.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			shares, err := vaultContract().QueryConvertToShares(sdk.NewClientCtx(), context.Background(), parseAmount(args[0]))
			if err != nil {
				panic(err)
			}
			fmt.Printf("Vault tokens: %s\n", shares)
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "convert-to-assets <amount>",
		Short: "To query the amount of base tokens exchanged for the given vault tokens.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			assets, err := vaultContract().QueryConvertToAssets(sdk.NewClientCtx(), context.Background(), parseAmount(args[0]))
			if err != nil {
				panic(err)
			}
			fmt.Printf("Base tokens: %s\n", assets)
		},
	})

	lockups := &cobra.Command{
		Use:   "lockups <owner>",
		Short: "To query the unclaimed unlocking positions of the owner.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var startAfter *uint64
			if s, err := cmd.Flags().GetUint64("start-after"); err == nil && cmd.Flags().Changed("start-after") {
				startAfter = &s
			}
			var limit *uint32
			if l, err := cmd.Flags().GetUint32("limit"); err == nil && cmd.Flags().Changed("limit") {
				limit = &l
			}

			positions, err := vaultContract().QueryLockups(sdk.NewClientCtx(), context.Background(), args[0], startAfter, limit)
			if err != nil {
				panic(err)
			}
			for _, position := range positions {
				fmt.Printf("Lockup %d: owner=%s amount=%s\n", position.ID, position.Owner, position.Amount)
			}
		},
	}
	lockups.Flags().Uint64("start-after", 0, "Return results only after this lockup id")
	lockups.Flags().Uint32("limit", 0, "Max amount of results to return")
	command.AddCommand(lockups)

	command.AddCommand(&cobra.Command{
		Use:   "lockup <lockup-id>",
		Short: "To query a specific unlocking position by id.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			position, err := vaultContract().QueryLockup(sdk.NewClientCtx(), context.Background(), parseLockupID(args[0]))
			if err != nil {
				panic(err)
			}
			fmt.Printf("Lockup %d: owner=%s amount=%s\n", position.ID, position.Owner, position.Amount)
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "lockup-duration",
		Short: "To query the duration of the vault's lockup.",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			duration, err := vaultContract().QueryLockupDuration(sdk.NewClientCtx(), context.Background())
			if err != nil {
				panic(err)
			}
			switch {
			case duration.Height != nil:
				fmt.Printf("Lockup duration: %d blocks\n", *duration.Height)
			case duration.Time != nil:
				fmt.Printf("Lockup duration: %d seconds\n", *duration.Time)
			}
		},
	})

	return command
}
