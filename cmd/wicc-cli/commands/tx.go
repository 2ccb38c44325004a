// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package commands

import (
	"fmt"
	"os"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/spf13/cobra"

	"github.com/waykichain/wicc-go/account"
	"github.com/waykichain/wicc-go/common"
	dbm "github.com/waykichain/wicc-go/common/db"
	"github.com/waykichain/wicc-go/contract"
	"github.com/waykichain/wicc-go/types"
)

func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operation",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		DecodeTxCmd(),
		SignTxCmd(),
	)

	return cmd
}

func DecodeTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a hex format transaction",
		Run:   decodeTx,
	}
	cmd.Flags().StringP("data", "d", "", "transaction content")
	cmd.MarkFlagRequired("data")
	return cmd
}

// offlineView decodes without a state database: addresses derivable from the
// transaction itself resolve, reg id aliases do not.
func offlineView() *account.DB {
	mem, _ := dbm.NewGoMemDB("decode", "", 0)
	return account.NewAccountDB(mem)
}

func decodeTx(cmd *cobra.Command, args []string) {
	data, _ := cmd.Flags().GetString("data")
	raw, err := common.FromHex(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	view := offlineView()
	if deploy, err := contract.DecodeDeployTx(raw); err == nil {
		printJSON(deploy.ToJSON(view))
		return
	}
	if invoke, err := contract.DecodeInvokeTx(raw); err == nil {
		printJSON(invoke.ToJSON(view))
		return
	}
	fmt.Fprintln(os.Stderr, "not a known transaction encoding")
}

func SignTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a hex format transaction",
		Run:   signTx,
	}
	cmd.Flags().StringP("data", "d", "", "transaction content")
	cmd.Flags().StringP("key", "k", "", "private key, hex")
	cmd.MarkFlagRequired("data")
	cmd.MarkFlagRequired("key")
	return cmd
}

type signResult struct {
	TxID string `json:"txid"`
	Raw  string `json:"raw"`
}

func signTx(cmd *cobra.Command, args []string) {
	data, _ := cmd.Flags().GetString("data")
	keyHex, _ := cmd.Flags().GetString("key")

	raw, err := common.FromHex(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	keyBytes, err := common.FromHex(keyHex)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	priv, _ := btcec.PrivKeyFromBytes(keyBytes)

	if deploy, err := contract.DecodeDeployTx(raw); err == nil {
		deploy.Signature = types.Sign(priv, deploy.SignBytes())
		printJSON(&signResult{TxID: common.ToHex(deploy.Hash()), Raw: common.ToHex(deploy.Encode())})
		return
	}
	if invoke, err := contract.DecodeInvokeTx(raw); err == nil {
		invoke.Signature = types.Sign(priv, invoke.SignBytes())
		printJSON(&signResult{TxID: common.ToHex(invoke.Hash()), Raw: common.ToHex(invoke.Encode())})
		return
	}
	fmt.Fprintln(os.Stderr, "not a known transaction encoding")
}
