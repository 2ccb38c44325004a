// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package commands

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/waykichain/wicc-go/common"
	"github.com/waykichain/wicc-go/common/address"
	"github.com/waykichain/wicc-go/types"
)

func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operation",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		GetAccountCmd(),
	)

	return cmd
}

func GetAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get account info by address or reg id",
		Run:   getAccount,
	}
	cmd.Flags().StringP("addr", "a", "", "account address or reg id")
	cmd.MarkFlagRequired("addr")
	return cmd
}

type accountResult struct {
	Address  string            `json:"address"`
	RegID    string            `json:"regid"`
	NickID   string            `json:"nickid,omitempty"`
	PubKey   string            `json:"pubkey,omitempty"`
	Balances map[string]string `json:"balances"`
}

func getAccount(cmd *cobra.Command, args []string) {
	cw, db, err := openState(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer db.Close()

	addr, _ := cmd.Flags().GetString("addr")
	uid, err := parseUserID(addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	acct, err := cw.AccountCache.GetAccount(uid)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	res := &accountResult{
		Address:  acct.KeyID.ToAddress(),
		RegID:    acct.RegID.String(),
		NickID:   acct.NickID,
		Balances: make(map[string]string),
	}
	if acct.HaveOwnerPubKey() {
		res.PubKey = common.ToHex(acct.OwnerPubKey)
	}
	for symbol, value := range acct.Balances {
		res.Balances[symbol] = decimal.New(int64(value), 0).
			Div(decimal.New(types.Coin, 0)).StringFixed(8)
	}
	printJSON(res)
}

// parseUserID accepts an address or a "height-index" reg id
func parseUserID(s string) (types.UserID, error) {
	if keyID, err := address.FromAddress(s); err == nil {
		return types.NewKeyUID(keyID), nil
	}
	regID, err := types.RegIDFromString(s)
	if err != nil {
		return types.UserID{}, fmt.Errorf("not an address or reg id: %s", s)
	}
	return types.NewRegUID(regID), nil
}
