package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	cosmwasmapi "github.com/mdjakovic0920/cw-vault-standard/cosmwasm-api"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "vault-cli",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool("verbose") {
				logger, err := zap.NewDevelopment()
				if err != nil {
					panic(err)
				}
				cosmwasmapi.SetLogger(logger)
			}
		},
	}

	rootCmd.PersistentFlags().String("node", "https://rpc.osmosis.zone:443", "Node uri, endpoint to the node, e.g. https://rpc.osmosis.zone:443")
	rootCmd.PersistentFlags().String("chain-id", "osmosis-1", "Chain id of the node, e.g. osmosis-1")
	rootCmd.PersistentFlags().String("keyring-backend", "os", "Backend of the keyring to use, options: os, test, file")
	rootCmd.PersistentFlags().String("from", "", "From key to use for signing transactions, e.g. key-name")
	rootCmd.PersistentFlags().String("contract", "", "Address of the vault contract to interact with")
	rootCmd.PersistentFlags().String("config", "", "Path to the config file, e.g. /path/to/config.yaml")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log transaction progress to stderr")

	_ = viper.BindPFlag("node", rootCmd.PersistentFlags().Lookup("node"))
	_ = viper.BindPFlag("chain-id", rootCmd.PersistentFlags().Lookup("chain-id"))
	_ = viper.BindPFlag("keyring-backend", rootCmd.PersistentFlags().Lookup("keyring-backend"))
	_ = viper.BindPFlag("from", rootCmd.PersistentFlags().Lookup("from"))
	_ = viper.BindPFlag("contract", rootCmd.PersistentFlags().Lookup("contract"))
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(VaultCommand())
	return rootCmd
}
