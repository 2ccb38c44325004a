// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/waykichain/wicc-go/common"
	"github.com/waykichain/wicc-go/types"
)

func ContractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Contract registry operation",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		GetContractCmd(),
		FuelRateCmd(),
	)

	return cmd
}

func GetContractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a deployed contract by reg id",
		Run:   getContract,
	}
	cmd.Flags().StringP("regid", "r", "", "contract reg id, height-index")
	cmd.MarkFlagRequired("regid")
	return cmd
}

type contractResult struct {
	RegID    string `json:"regid"`
	Address  string `json:"address"`
	VMKind   int32  `json:"vm_kind"`
	CodeSize int    `json:"code_size"`
	Code     string `json:"code"`
	Memo     string `json:"memo,omitempty"`
}

func getContract(cmd *cobra.Command, args []string) {
	cw, db, err := openState(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer db.Close()

	regIDStr, _ := cmd.Flags().GetString("regid")
	regID, err := types.RegIDFromString(regIDStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	contract, err := cw.ContractCache.GetContract(regID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	printJSON(&contractResult{
		RegID:    regID.String(),
		Address:  regID.KeyID().ToAddress(),
		VMKind:   int32(contract.VMKind),
		CodeSize: len(contract.Code),
		Code:     common.ToHex(contract.Code),
		Memo:     contract.Memo,
	})
}

func FuelRateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuelrate",
		Short: "Get the current fuel rate",
		Run:   getFuelRate,
	}
	return cmd
}

func getFuelRate(cmd *cobra.Command, args []string) {
	cw, db, err := openState(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer db.Close()

	fmt.Println(cw.ContractCache.GetFuelRate())
}
