// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/waykichain/wicc-go/cmd/wicc-cli/commands"
	"github.com/waykichain/wicc-go/common"
)

var rootCmd = &cobra.Command{
	Use:   "wicc-cli",
	Short: "wicc client tools",
}

func init() {
	rootCmd.PersistentFlags().String("datadir", "datadir", "state database directory")
	rootCmd.PersistentFlags().String("conf", "", "configuration file (toml)")

	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.ContractCmd(),
		commands.KeyCmd(),
		commands.TxCmd(),
	)
}

func main() {
	common.SetLogLevel("error")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
