// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package commands

import (
	"fmt"
	"os"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/spf13/cobra"

	"github.com/waykichain/wicc-go/common"
	"github.com/waykichain/wicc-go/common/address"
)

func KeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Key operation",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		GenerateKeyCmd(),
		AddressOfKeyCmd(),
	)

	return cmd
}

func GenerateKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new private key and its address",
		Run:   generateKey,
	}
	return cmd
}

type keyResult struct {
	PrivKey string `json:"privkey"`
	PubKey  string `json:"pubkey"`
	Address string `json:"address"`
}

func generateKey(cmd *cobra.Command, args []string) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	pub := priv.PubKey().SerializeCompressed()
	printJSON(&keyResult{
		PrivKey: common.ToHex(priv.Serialize()),
		PubKey:  common.ToHex(pub),
		Address: address.PubKeyToAddress(pub),
	})
}

func AddressOfKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Derive the address of a public key",
		Run:   addressOfKey,
	}
	cmd.Flags().StringP("pubkey", "p", "", "compressed public key, hex")
	cmd.MarkFlagRequired("pubkey")
	return cmd
}

func addressOfKey(cmd *cobra.Command, args []string) {
	pubHex, _ := cmd.Flags().GetString("pubkey")
	pub, err := common.FromHex(pubHex)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(address.PubKeyToAddress(pub))
}
